package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestGetSummary(t *testing.T) {
	stats := &mockStatsRepo{
		counts: map[string]int64{"users": 10, "doctors": 3, "patients": 7, "appointments": 4},
		statuses: []entity.AppointmentStatus{
			entity.AppointmentStatusBooked,
			entity.AppointmentStatusBooked,
			entity.AppointmentStatusAttended,
			entity.AppointmentStatusCancelled,
		},
	}
	cache := &mockDashboardCache{}
	u := NewDashboardUsecase(testDB(t), testLogger(), stats, cache, time.Second)

	summary, err := u.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Totals) != 8 {
		t.Errorf("got %d totals, want one per table", len(summary.Totals))
	}
	if summary.Totals["doctors"] != 3 || summary.Totals["medications"] != 0 {
		t.Errorf("totals = %v", summary.Totals)
	}
	if stats.calls != 9 {
		t.Errorf("got %d queries, want 8 counts and 1 status fetch", stats.calls)
	}
	if summary.AppointmentTotal != 4 {
		t.Errorf("appointment total = %d, want 4", summary.AppointmentTotal)
	}

	want := map[string]struct {
		count   int
		percent string
	}{
		"Booked":    {2, "50"},
		"Attended":  {1, "25"},
		"Cancelled": {1, "25"},
	}
	for _, b := range summary.StatusDistribution {
		w := want[b.Status]
		if b.Count != w.count || !b.Percent.Equal(decimal.RequireFromString(w.percent)) {
			t.Errorf("%s = %d/%s, want %d/%s", b.Status, b.Count, b.Percent, w.count, w.percent)
		}
	}
	if summary.Cached {
		t.Error("fresh summary marked cached")
	}
	if cache.stored != summary {
		t.Error("summary was not cached")
	}
}

func TestGetSummaryAllOrNothing(t *testing.T) {
	stats := &mockStatsRepo{counts: map[string]int64{"users": 1}, failOn: "prescriptions"}
	cache := &mockDashboardCache{}
	u := NewDashboardUsecase(testDB(t), testLogger(), stats, cache, time.Second)

	summary, err := u.GetSummary(context.Background())

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Entity != "prescriptions" {
		t.Fatalf("got %v, want fetch error for prescriptions", err)
	}
	if summary != nil {
		t.Errorf("partial summary returned: %+v", summary)
	}
	if cache.stored != nil {
		t.Error("failed summary was cached")
	}
}

func TestGetSummaryFromCache(t *testing.T) {
	stats := &mockStatsRepo{}
	cache := &mockDashboardCache{cached: &dto.DashboardResponse{Totals: map[string]int64{"users": 5}}}
	u := NewDashboardUsecase(testDB(t), testLogger(), stats, cache, time.Second)

	summary, err := u.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Cached || summary.Totals["users"] != 5 {
		t.Errorf("summary = %+v, want cached copy", summary)
	}
	if stats.calls != 0 {
		t.Errorf("cache hit still issued %d queries", stats.calls)
	}
}

func TestGetSummaryEmptyDatabase(t *testing.T) {
	u := NewDashboardUsecase(testDB(t), testLogger(), &mockStatsRepo{}, &mockDashboardCache{}, time.Second)

	summary, err := u.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range summary.StatusDistribution {
		if b.Count != 0 || !b.Percent.IsZero() {
			t.Errorf("%s = %d/%s, want 0/0", b.Status, b.Count, b.Percent)
		}
	}
}
