package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateRange is an inclusive calendar-day range used to filter transactions.
// Both bounds are interpreted at day granularity.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Start returns the beginning of the first day of the range.
func (r DateRange) Start() time.Time {
	return time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, r.From.Location())
}

// End returns the exclusive upper bound, i.e. the beginning of the day after To.
func (r DateRange) End() time.Time {
	return time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, r.To.Location()).AddDate(0, 0, 1)
}
