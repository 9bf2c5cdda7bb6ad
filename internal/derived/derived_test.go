package derived

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hospital-admin/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birth := date(1990, time.June, 15)
	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"day before birthday", date(2024, time.June, 14), 33},
		{"on birthday", date(2024, time.June, 15), 34},
		{"earlier month", date(2024, time.May, 30), 33},
		{"later month", date(2024, time.July, 1), 34},
		{"birth day", birth, 0},
		{"before birth", date(1980, time.January, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Age(birth, tt.today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAgeLeapDay(t *testing.T) {
	birth := date(2000, time.February, 29)
	if got, _ := Age(birth, date(2023, time.February, 28)); got != 22 {
		t.Errorf("got %d, want 22", got)
	}
	if got, _ := Age(birth, date(2023, time.March, 1)); got != 23 {
		t.Errorf("got %d, want 23", got)
	}
}

func TestAgeMonotonic(t *testing.T) {
	birth := date(1985, time.December, 31)
	prev := -1
	for day := date(2020, time.January, 1); day.Before(date(2023, time.January, 1)); day = day.AddDate(0, 0, 1) {
		got, err := Age(birth, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, _ := Age(birth, day)
		if got != again {
			t.Fatalf("Age not stable on %s: %d vs %d", day.Format(time.DateOnly), got, again)
		}
		if got < prev {
			t.Fatalf("Age decreased on %s: %d after %d", day.Format(time.DateOnly), got, prev)
		}
		prev = got
	}
}

func TestAgeMissingBirthDate(t *testing.T) {
	if _, err := Age(time.Time{}, date(2024, time.June, 1)); !errors.Is(err, ErrMissingDate) {
		t.Errorf("got %v, want ErrMissingDate", err)
	}
}

func TestDaysHospitalized(t *testing.T) {
	admission := time.Date(2024, time.March, 9, 22, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"same instant", admission, 0},
		{"same day later", time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC), 0},
		{"next morning", time.Date(2024, time.March, 10, 1, 0, 0, 0, time.UTC), 1},
		{"across leap month", date(2024, time.April, 9), 31},
		{"future admission", date(2024, time.March, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysHospitalized(admission, tt.today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := DaysHospitalized(time.Time{}, admission); !errors.Is(err, ErrMissingDate) {
		t.Errorf("got %v, want ErrMissingDate", err)
	}
}

func TestAge_ReadsTodayInCallerZone(t *testing.T) {
	birth := date(1990, time.March, 15)
	taipei := time.FixedZone("UTC+8", 8*60*60)

	// 02:00 on the birthday in UTC+8 is still the 14th in UTC.
	today := time.Date(2026, time.March, 15, 2, 0, 0, 0, taipei)
	got, err := Age(birth, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 36 {
		t.Errorf("got %d, want 36", got)
	}

	got, _ = Age(birth, today.Add(-3*time.Hour))
	if got != 35 {
		t.Errorf("day before birthday: got %d, want 35", got)
	}
}

func TestDaysHospitalized_CountsInCallerZone(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	// 04:00 on the 15th locally.
	admission := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"late the same local day", time.Date(2026, time.March, 15, 23, 0, 0, 0, taipei), 0},
		{"just after local midnight", time.Date(2026, time.March, 16, 0, 30, 0, 0, taipei), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysHospitalized(admission, tt.today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusDistribution(t *testing.T) {
	dist := StatusDistribution([]entity.AppointmentStatus{
		entity.AppointmentStatusBooked,
		entity.AppointmentStatusBooked,
		entity.AppointmentStatusAttended,
		entity.AppointmentStatusCancelled,
	})
	if dist.Total != 4 {
		t.Errorf("total = %d, want 4", dist.Total)
	}

	want := map[entity.AppointmentStatus]struct {
		count   int
		percent string
	}{
		entity.AppointmentStatusBooked:    {2, "50"},
		entity.AppointmentStatusAttended:  {1, "25"},
		entity.AppointmentStatusCancelled: {1, "25"},
	}
	for status, w := range want {
		b := dist.Bucket(status)
		if b.Count != w.count {
			t.Errorf("%s count = %d, want %d", status, b.Count, w.count)
		}
		if !b.Percent.Equal(decimal.RequireFromString(w.percent)) {
			t.Errorf("%s percent = %s, want %s", status, b.Percent, w.percent)
		}
	}
}

func TestStatusDistributionSumsToHundred(t *testing.T) {
	dist := StatusDistribution([]entity.AppointmentStatus{
		entity.AppointmentStatusBooked,
		entity.AppointmentStatusAttended,
		entity.AppointmentStatusCancelled,
	})
	sum := decimal.Zero
	for _, b := range dist.Buckets {
		sum = sum.Add(b.Percent)
	}
	// 33.33 * 3
	if diff := sum.Sub(decimal.NewFromInt(100)).Abs(); diff.GreaterThan(decimal.RequireFromString("0.05")) {
		t.Errorf("percentages sum to %s", sum)
	}
}

func TestStatusDistributionEmpty(t *testing.T) {
	dist := StatusDistribution(nil)
	if dist.Total != 0 {
		t.Errorf("total = %d, want 0", dist.Total)
	}
	if len(dist.Buckets) != len(entity.AppointmentStatuses) {
		t.Fatalf("got %d buckets, want %d", len(dist.Buckets), len(entity.AppointmentStatuses))
	}
	for _, b := range dist.Buckets {
		if b.Count != 0 || !b.Percent.IsZero() {
			t.Errorf("%s = %d/%s, want 0/0", b.Status, b.Count, b.Percent)
		}
	}
}
