// ================== internal/features/reports/model.go ==================
package reports

import (
	"fmt"
	"time"
)

// LeakStatus is the intervention state of a leak report.
type LeakStatus string

const (
	StatusNew        LeakStatus = "NEW"
	StatusInProgress LeakStatus = "IN_PROGRESS"
	StatusResolved   LeakStatus = "RESOLVED"
	StatusUrgent     LeakStatus = "URGENT"
)

// AllStatuses lists every valid status, in display order.
var AllStatuses = []LeakStatus{StatusNew, StatusInProgress, StatusResolved, StatusUrgent}

// Valid reports whether s is a known status.
func (s LeakStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusUrgent:
		return true
	}
	return false
}

// Label renders the status for display. Unknown values render as a neutral
// generic label so future statuses never break consumers.
func (s LeakStatus) Label() string {
	switch s {
	case StatusNew:
		return "Nouveau"
	case StatusInProgress:
		return "En cours"
	case StatusResolved:
		return "Résolu"
	case StatusUrgent:
		return "Urgent"
	}
	return "Inconnu"
}

// Date is a calendar date without a time component, serialized as 2006-01-02.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a 2006-01-02 string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Coordinates is a GPS position in signed decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"48.8566"`
	Longitude float64 `json:"longitude" example:"2.3522"`
}

// Valid reports whether the pair is within geographic range.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// AIAnalysis is the advisory attached to a report for display and history.
type AIAnalysis struct {
	Severity string `json:"severity" example:"High"`
	Summary  string `json:"summary" example:"Major water leak under the roadway"`
}

// LeakReport is one incident record
// @Description Leak incident report with claimant, location and photo data
type LeakReport struct {
	ID                 string       `json:"id" example:"652d84a1-98c7-4b55-a2ef-b6a9e53a1f30"`
	Address            string       `json:"address" example:"12 Rue de la République"`
	ClaimantName       string       `json:"claimantName" example:"Jean Dupont"`
	ClaimantPhone      string       `json:"claimantPhone" example:"0612345678"`
	Coordinates        *Coordinates `json:"coordinates,omitempty"`
	IdentificationDate Date         `json:"identificationDate" swaggertype:"string" example:"2026-08-31"`
	Status             LeakStatus   `json:"status" example:"NEW" enums:"NEW,IN_PROGRESS,RESOLVED,URGENT"`
	Comments           string       `json:"comments" example:"Fuite importante sous la chaussée"`
	Photo              string       `json:"photo,omitempty"`
	AIAnalysis         *AIAnalysis  `json:"aiAnalysis,omitempty"`
	CreatedAt          time.Time    `json:"createdAt" example:"2026-08-31T10:15:00Z"`
}

// CreateReportRequest represents report creation data
// @Description Data required to create a new leak report
type CreateReportRequest struct {
	Address            string       `json:"address" example:"12 Rue de la République"`
	ClaimantName       string       `json:"claimantName" example:"Jean Dupont"`
	ClaimantPhone      string       `json:"claimantPhone" example:"0612345678"`
	Coordinates        *Coordinates `json:"coordinates"`
	IdentificationDate string       `json:"identificationDate" example:"2026-08-31"`
	Status             string       `json:"status" example:"NEW" enums:"NEW,IN_PROGRESS,RESOLVED,URGENT"`
	Comments           string       `json:"comments"`
	Photo              string       `json:"photo"`
	AIAnalysis         *AIAnalysis  `json:"aiAnalysis"`
}
