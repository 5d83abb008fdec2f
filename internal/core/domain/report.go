package domain

import (
	"errors"
	"time"
)

// CrimeType is the closed set of incident categories a report can carry.
type CrimeType string

const (
	CrimeRobbery          CrimeType = "ROBBERY"
	CrimeDomesticViolence CrimeType = "DOMESTIC_VIOLENCE"
	CrimeFight            CrimeType = "FIGHT"
	CrimeHomicide         CrimeType = "HOMICIDE"
	CrimeSexualAbuse      CrimeType = "SEXUAL_ABUSE"
	CrimeThreats          CrimeType = "THREATS"
	CrimeTheft            CrimeType = "THEFT"
	CrimeDrugs            CrimeType = "DRUGS"
	CrimeAlcohol          CrimeType = "ALCOHOL"
	CrimeNoise            CrimeType = "NOISE"
	CrimeOther            CrimeType = "OTHER"
)

// CrimeTypes lists every valid category in a stable order.
var CrimeTypes = []CrimeType{
	CrimeRobbery,
	CrimeDomesticViolence,
	CrimeFight,
	CrimeHomicide,
	CrimeSexualAbuse,
	CrimeThreats,
	CrimeTheft,
	CrimeDrugs,
	CrimeAlcohol,
	CrimeNoise,
	CrimeOther,
}

// Valid reports whether c is one of the known categories.
func (c CrimeType) Valid() bool {
	for _, known := range CrimeTypes {
		if c == known {
			return true
		}
	}
	return false
}

// ReportStatus represents the lifecycle state of a report. The only legal
// transition is ACTIVE → CLOSED.
type ReportStatus string

const (
	StatusActive ReportStatus = "ACTIVE"
	StatusClosed ReportStatus = "CLOSED"
)

var ErrReportNotFound = errors.New("report not found")
var ErrReportClosed = errors.New("report already closed")

// Coordinates represents a geographic point on the public map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is a single community incident report. CreatedBy references a
// User.ID by value; the user record is looked up on demand, never owned.
type Report struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	CrimeType   CrimeType    `json:"crime_type"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone,omitempty"`
	Location    Coordinates  `json:"location"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedBy   string       `json:"created_by"`

	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	ClosedBy      string     `json:"closed_by,omitempty"`
	ClosureReport string     `json:"closure_report,omitempty"`
}

// Close transitions the report to CLOSED and records the closure metadata in
// a single step. A report can be closed exactly once; re-closing fails with
// ErrReportClosed and leaves every closure field untouched.
func (r *Report) Close(closedBy, closureReport string, at time.Time) error {
	if r.Status == StatusClosed {
		return ErrReportClosed
	}
	r.Status = StatusClosed
	r.ClosedAt = &at
	r.ClosedBy = closedBy
	r.ClosureReport = closureReport
	return nil
}
