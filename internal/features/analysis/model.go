// ================== internal/features/analysis/model.go ==================
package analysis

import (
	"github.com/ModesteNGOMA/geofuite/internal/features/reports"
)

// Severity levels the advisory is constrained to.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// AllSeverities lists the valid severity levels.
var AllSeverities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Result is the structured advisory produced from a leak description
// @Description AI-suggested severity, technical summary and status
type Result struct {
	Severity          string             `json:"severity" example:"High" enums:"Low,Medium,High,Critical"`
	Summary           string             `json:"summary" example:"Major water leak under the roadway, risk of subsidence"`
	RecommendedStatus reports.LeakStatus `json:"recommendedStatus" example:"URGENT" enums:"NEW,IN_PROGRESS,RESOLVED,URGENT"`
}

// Valid reports whether every field of the advisory is a member of its
// constrained set. The remote endpoint is never trusted: an advisory with
// an unknown severity or status is rejected as a whole.
func (r *Result) Valid() bool {
	if r == nil {
		return false
	}
	if !r.RecommendedStatus.Valid() {
		return false
	}
	for _, s := range AllSeverities {
		if r.Severity == s {
			return true
		}
	}
	return false
}

// AnalyzeRequest represents the description sent for analysis
// @Description Free-text comments and address of the draft report
type AnalyzeRequest struct {
	Comments string `json:"comments" example:"Fuite importante sous la chaussée"`
	Address  string `json:"address" example:"12 Rue de la République"`
}
