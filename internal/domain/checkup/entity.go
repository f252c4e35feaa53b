package checkup

import "time"

// SeverityLevel classifies the overall outcome of a checkup.
type SeverityLevel string

const (
	SeverityNormal   SeverityLevel = "normal"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

// Result is a single completed wellness checkup. Results are immutable once
// appended to a user's history.
type Result struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"user_id"`
	CompanyID       string                   `json:"company_id"`
	Date            time.Time                `json:"date"`
	Responses       map[string]int           `json:"responses,omitempty"`
	Scores          map[string]float64       `json:"scores,omitempty"`
	Classifications map[string]SeverityLevel `json:"classifications,omitempty"`
	OverallScore    float64                  `json:"overall_score"`
	SeverityLevel   SeverityLevel            `json:"severity_level"`
	NextCheckupDate time.Time                `json:"next_checkup_date"`
}

// IsSevere checks if the result requires the shortened follow-up interval.
func (r *Result) IsSevere() bool {
	return r.SeverityLevel == SeveritySevere
}
