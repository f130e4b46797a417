package scoring

import (
	"math"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

// qualityFieldCount is the size of the fixed checklist used for the
// data-quality ratio.
const qualityFieldCount = 9

// Score computes all scoring metrics for a raw business record. It is pure
// and deterministic: no storage, no clock, no randomness. The same record
// always yields the same result.
func Score(rec domain.RawBusinessRecord) domain.ScoreResult {
	ai := aiScore(rec)
	priority := priorityFor(ai)
	return domain.ScoreResult{
		AIScore:               ai,
		Priority:              priority,
		ConversionProbability: conversionProbability(ai, rec),
		DataQualityScore:      dataQualityScore(rec),
		RecommendedAction:     recommendedAction(priority, rec),
		EstimatedRevenue:      estimatedRevenue(priority),
	}
}

// aiScore applies the additive weight table. Missing numeric fields
// contribute zero; the final clamp guards against future weight changes.
func aiScore(rec domain.RawBusinessRecord) int {
	score := 0

	// Review volume, exclusive tiers.
	if rec.ReviewsCount != nil {
		switch reviews := *rec.ReviewsCount; {
		case reviews > 100:
			score += 30
		case reviews > 50:
			score += 20
		case reviews > 10:
			score += 10
		}
	}

	// Digital presence.
	hasWebsite := rec.Website != ""
	hasEmail := rec.Email != ""
	switch {
	case hasWebsite && hasEmail:
		score += 25
	case hasWebsite || hasEmail:
		score += 15
	}

	// Rating tier.
	if rec.Rating != nil {
		switch rating := *rec.Rating; {
		case rating >= 4.5:
			score += 20
		case rating >= 4.0:
			score += 15
		case rating >= 3.5:
			score += 10
		}
	}

	// Contactability, additive.
	if rec.Phone != "" {
		score += 10
	}
	if hasEmail {
		score += 10
	}
	if hasWebsite {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// priorityFor maps an AI score onto the A/B/C priority buckets. Priority is
// always derived from the score, never stored independently.
func priorityFor(ai int) domain.Priority {
	switch {
	case ai >= 80:
		return domain.PriorityA
	case ai >= 60:
		return domain.PriorityB
	default:
		return domain.PriorityC
	}
}

// conversionProbability blends the AI score with engagement bonuses. Note the
// review thresholds here are inclusive, unlike the exclusive ai score tiers.
func conversionProbability(ai int, rec domain.RawBusinessRecord) float64 {
	p := 0.6 * float64(ai)

	if rec.Rating != nil {
		switch rating := *rec.Rating; {
		case rating >= 4.5:
			p += 10
		case rating >= 4.0:
			p += 5
		}
	}
	if rec.ReviewsCount != nil {
		switch reviews := *rec.ReviewsCount; {
		case reviews >= 100:
			p += 10
		case reviews >= 50:
			p += 5
		}
	}
	if rec.Website != "" {
		p += 10
	}
	if rec.Email != "" {
		p += 10
	}

	if p > 100 {
		p = 100
	}
	return math.Round(p*10) / 10
}

// dataQualityScore is the floor of filled/9*100 over the fixed checklist.
// A parsed zero still counts as filled; only nil pointers and empty strings
// are absent, so adding any field never lowers the score.
func dataQualityScore(rec domain.RawBusinessRecord) int {
	filled := 0
	for _, present := range []bool{
		rec.Name != "",
		rec.Phone != "",
		rec.Email != "",
		rec.Website != "",
		rec.Address != "",
		rec.Rating != nil,
		rec.ReviewsCount != nil,
		rec.Category != "",
		rec.SourceURL != "",
	} {
		if present {
			filled++
		}
	}
	return filled * 100 / qualityFieldCount
}

// recommendedAction picks the outreach step for the priority bucket, branching
// on which contact channels the record carries.
func recommendedAction(priority domain.Priority, rec domain.RawBusinessRecord) string {
	hasPhone := rec.Phone != ""
	hasEmail := rec.Email != ""

	switch priority {
	case domain.PriorityA:
		switch {
		case hasPhone:
			return "Call immediately - High potential lead"
		case hasEmail:
			return "Send personalized email within 24 hours"
		default:
			return "Research contact info and reach out ASAP"
		}
	case domain.PriorityB:
		if hasPhone || hasEmail {
			return "Follow up within 48 hours"
		}
		return "Add to nurture campaign"
	default:
		return "Add to email drip campaign for future engagement"
	}
}

// estimatedRevenue returns the lifetime-value label for the priority bucket.
func estimatedRevenue(priority domain.Priority) string {
	switch priority {
	case domain.PriorityA:
		return "$10,000 - $50,000 LTV"
	case domain.PriorityB:
		return "$5,000 - $15,000 LTV"
	default:
		return "$1,000 - $5,000 LTV"
	}
}
