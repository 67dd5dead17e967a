package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertySnapshot is the slice of a Property copied onto a rental at
// creation time. Snapshots are immutable for the life of the rental so
// that later edits to the property do not rewrite rental history.
type PropertySnapshot struct {
	ID   uuid.UUID `json:"id" db:"property_id"`
	Name string    `json:"name" db:"property_name"`
}

type AgentSnapshot struct {
	ID                             uuid.UUID `json:"id" db:"agent_id"`
	EntityName                     string    `json:"entityName" db:"agent_entity_name"`
	Name                           string    `json:"name" db:"agent_name"`
	Email                          string    `json:"email" db:"agent_email"`
	Phone                          *string   `json:"phone" db:"agent_phone"`
	VATInclManagementFeePercentage float64   `json:"vatInclManagementFeePercentage" db:"agent_vat_incl_management_fee_percentage"`
}

type TenantSnapshot struct {
	ID   uuid.UUID `json:"id" db:"tenant_id"`
	Name string    `json:"name" db:"tenant_name"`
}

type Rental struct {
	ID                  uuid.UUID        `json:"id" db:"id"`
	Property            PropertySnapshot `json:"property"`
	Agent               AgentSnapshot    `json:"agent"`
	Tenant              TenantSnapshot   `json:"tenant"`
	StartDate           time.Time        `json:"startDate" db:"start_date"`
	EndDate             time.Time        `json:"endDate" db:"end_date"`
	MonthlyRentalAmount float64          `json:"monthlyRentalAmount" db:"monthly_rental_amount"`

	// Duration and IsActive are derived and recomputed on every read.
	Duration float64 `json:"duration" db:"-"`
	IsActive bool    `json:"isActive" db:"-"`
}

// DurationMonths returns the rental length in whole and fractional months.
// The end date's day is included: the span runs from startDate to
// endDate plus one day.
func (r *Rental) DurationMonths() float64 {
	return monthsBetween(r.StartDate, r.EndDate.AddDate(0, 0, 1))
}

// ActiveAt reports whether the rental is running at the given moment.
// A rental ending today is still active through the end of that day.
func (r *Rental) ActiveAt(now time.Time) bool {
	return r.StartDate.Before(now) && now.Before(r.EndDate.AddDate(0, 0, 1))
}

// Derive recomputes the duration and active flag against the given moment.
func (r *Rental) Derive(now time.Time) {
	r.Duration = r.DurationMonths()
	r.IsActive = r.ActiveAt(now)
}

// monthsBetween computes the whole-and-fractional month difference between
// two dates. The fractional part is measured against the length of the
// partial month, so a 15-day remainder inside a 31-day month counts 15/31.
func monthsBetween(a, b time.Time) float64 {
	whole := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	anchor := addMonths(a, whole)
	if b.Before(anchor) {
		prev := addMonths(a, whole-1)
		return float64(whole) + float64(b.Sub(anchor))/float64(anchor.Sub(prev))
	}
	next := addMonths(a, whole+1)
	return float64(whole) + float64(b.Sub(anchor))/float64(next.Sub(anchor))
}

// addMonths shifts a date by whole months, clamping to the last day of
// shorter months (Jan 31 plus one month is Feb 28, not Mar 3).
func addMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := firstOfTarget.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
