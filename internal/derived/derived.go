// Package derived computes presentation values from stored columns: calendar age,
// days in hospital and the appointment status breakdown shown on the dashboard.
package derived

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"hospital-admin/internal/domain/entity"
)

// ErrMissingDate is returned when a computation needs a date the row does not carry.
var ErrMissingDate = errors.New("date is missing")

// Age returns the number of full years between birth and today. birth is a civil date
// (Postgres date columns arrive as UTC midnight) and today is read in its own zone, so the
// caller's clock decides which day it is. A birthday later in the year than today's
// month/day has not been reached yet.
func Age(birth, today time.Time) (int, error) {
	if birth.IsZero() {
		return 0, ErrMissingDate
	}
	by, bm, bd := birth.Date()
	ty, tm, td := today.Date()

	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	if age < 0 {
		return 0, nil
	}
	return age, nil
}

// DaysHospitalized counts whole calendar days since admission in today's zone; the
// admission day is day zero. Admissions dated in the future yield zero.
func DaysHospitalized(admission, today time.Time) (int, error) {
	if admission.IsZero() {
		return 0, ErrMissingDate
	}
	from := civilDay(admission.In(today.Location()))
	to := civilDay(today)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0, nil
	}
	return days, nil
}

// civilDay drops the clock and the zone so that DST shifts never produce a fractional day.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Bucket is the share of one status in a distribution.
type Bucket struct {
	Status  entity.AppointmentStatus `json:"status"`
	Count   int                      `json:"count"`
	Percent decimal.Decimal          `json:"percent"`
}

type Distribution struct {
	Total   int      `json:"total"`
	Buckets []Bucket `json:"buckets"`
}

// Bucket returns the entry for status, or a zero bucket when status is unknown.
func (d Distribution) Bucket(status entity.AppointmentStatus) Bucket {
	for _, b := range d.Buckets {
		if b.Status == status {
			return b
		}
	}
	return Bucket{Status: status, Percent: decimal.Zero}
}

var hundred = decimal.NewFromInt(100)

// StatusDistribution counts statuses into the Booked, Attended and Cancelled buckets and
// expresses each as a percentage of all statuses rounded to two places. Statuses outside
// the known set count toward the total only. A zero total gives 0% for every bucket.
func StatusDistribution(statuses []entity.AppointmentStatus) Distribution {
	counts := make(map[entity.AppointmentStatus]int, len(entity.AppointmentStatuses))
	for _, s := range statuses {
		counts[s]++
	}

	total := len(statuses)
	dist := Distribution{Total: total, Buckets: make([]Bucket, 0, len(entity.AppointmentStatuses))}
	for _, s := range entity.AppointmentStatuses {
		pct := decimal.Zero
		if total > 0 {
			pct = decimal.NewFromInt(int64(counts[s])).
				Mul(hundred).
				DivRound(decimal.NewFromInt(int64(total)), 2)
		}
		dist.Buckets = append(dist.Buckets, Bucket{Status: s, Count: counts[s], Percent: pct})
	}
	return dist
}
