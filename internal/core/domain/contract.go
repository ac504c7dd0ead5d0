package domain

import "time"

type ContractStatus string

const (
	ContractActive     ContractStatus = "ACTIVO"
	ContractExpired    ContractStatus = "VENCIDO"
	ContractTerminated ContractStatus = "TERMINADO"
	ContractSuspended  ContractStatus = "SUSPENDIDO"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractTerminated, ContractSuspended:
		return true
	}
	return false
}

type RentalContract struct {
	ID                  int64          `json:"id"`
	PropertyID          int64          `json:"property_id"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	DurationMonths      int            `json:"duration_months"`
	Status              ContractStatus `json:"status"`
	SecurityDeposit     *float64       `json:"security_deposit,omitempty"`
	SpecialConditions   *string        `json:"special_conditions,omitempty"`
	NotificationContact *string        `json:"notification_contact,omitempty"`
	NotificationDays    *int           `json:"notification_days,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// NewRentalContract builds an ACTIVO contract with its end date derived from
// start and duration.
func NewRentalContract(propertyID int64, start time.Time, durationMonths int, now time.Time) *RentalContract {
	c := &RentalContract{
		PropertyID:     propertyID,
		StartDate:      start,
		DurationMonths: durationMonths,
		Status:         ContractActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	c.RecomputeEndDate()
	return c
}

func (c *RentalContract) RecomputeEndDate() {
	c.EndDate = AddMonths(c.StartDate, c.DurationMonths)
}

func (c *RentalContract) IsActive() bool {
	return c.Status == ContractActive
}

// Terminate moves an active contract to TERMINADO ending now. Terminating an
// already terminated contract changes nothing and reports false.
func (c *RentalContract) Terminate(now time.Time) (bool, error) {
	switch c.Status {
	case ContractTerminated:
		return false, nil
	case ContractActive:
		c.Status = ContractTerminated
		c.EndDate = now
		c.UpdatedAt = now
		return true, nil
	default:
		return false, ErrContractNotActive
	}
}

// Renew extends an active contract. The end date is recomputed from the
// start so it never drifts from start plus duration.
func (c *RentalContract) Renew(months int, now time.Time) error {
	if !c.IsActive() {
		return ErrContractNotActive
	}
	if months < 1 {
		return NewValidationError("meses", "must be at least 1")
	}
	c.DurationMonths += months
	c.RecomputeEndDate()
	c.UpdatedAt = now
	return nil
}

// NeedsNotification reports whether now falls inside the pre-expiration
// notice window: now >= end - leadDays, for active contracts only.
func NeedsNotification(now time.Time, status ContractStatus, end time.Time, leadDays int) bool {
	if status != ContractActive {
		return false
	}
	return !now.Before(end.AddDate(0, 0, -leadDays))
}

// NotificationLeadDays returns the contract's own lead time, or fallback.
func (c *RentalContract) NotificationLeadDays(fallback int) int {
	if c.NotificationDays != nil && *c.NotificationDays > 0 {
		return *c.NotificationDays
	}
	return fallback
}

// AddMonths adds calendar months, clamping the day to the last day of the
// target month. Time of day and location are kept.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
