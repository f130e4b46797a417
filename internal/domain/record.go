package domain

import "strings"

// RawBusinessRecord is a single business entry as returned by a data source,
// before scoring. Optional fields are pointers or empty strings; a field that
// could not be parsed upstream arrives as nil, never as an error.
type RawBusinessRecord struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Website      string   `json:"website,omitempty"`
	Address      string   `json:"address,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewsCount *int     `json:"reviews_count,omitempty"`
	Category     string   `json:"category,omitempty"`
	SourceURL    string   `json:"source_url,omitempty"`
}

// ScoreResult holds the metrics produced by scoring a single record.
type ScoreResult struct {
	AIScore               int      `json:"ai_score"`
	Priority              Priority `json:"priority"`
	ConversionProbability float64  `json:"conversion_probability"`
	DataQualityScore      int      `json:"data_quality_score"`
	RecommendedAction     string   `json:"recommended_action"`
	EstimatedRevenue      string   `json:"estimated_revenue"`
}

// Fingerprint derives the duplicate-detection key for a business:
// the lowercased, underscore-joined name followed by the source identifier.
// Parameters:
//   - name: business name.
//   - sourceURL: source identifier (maps profile URL or equivalent).
// Returns:
//   - string: derived fingerprint.
func Fingerprint(name, sourceURL string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	return slug + "_" + sourceURL
}

// Fingerprint returns the duplicate-detection key for this record.
// Parameters: none.
// Returns:
//   - string: derived fingerprint.
func (r RawBusinessRecord) Fingerprint() string {
	return Fingerprint(r.Name, r.SourceURL)
}
