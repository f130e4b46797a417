package domain

import "time"

// User represents an account that can authenticate against the API.
// The sales counters are maintained by workflows outside this service and
// are surfaced read-only through the profile endpoint.
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"type:text;not null;uniqueIndex:idx_users_email" json:"email"`
	HashedPassword   string     `gorm:"type:text;not null" json:"-"`
	FullName         string     `gorm:"type:text" json:"full_name,omitempty"`
	Role             string     `gorm:"type:text;default:user" json:"role"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	LeadsAssigned    int        `gorm:"default:0" json:"leads_assigned"`
	LeadsContacted   int        `gorm:"default:0" json:"leads_contacted"`
	DealsClosed      int        `gorm:"default:0" json:"deals_closed"`
	RevenueGenerated float64    `gorm:"default:0" json:"revenue_generated"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}
