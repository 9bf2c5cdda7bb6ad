package service

import (
	"context"
	"io"
	"testing"

	"hospital-admin/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

func TestDashboardCacheDisabledNeverTouchesRedis(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	// nil client: any Redis call would panic
	cache := NewRedisDashboardCache(nil, log, 0)

	if err := cache.Set(context.Background(), &dto.DashboardResponse{}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := cache.Get(context.Background())
	if err != nil || hit || got != nil {
		t.Fatalf("Get = %v, %v, %v; want miss", got, hit, err)
	}
}

func TestSessionKeys(t *testing.T) {
	if got := accessKey(42, "abc"); got != "access_token:42:abc" {
		t.Errorf("accessKey = %q", got)
	}
	if got := refreshKey(7, "xyz"); got != "refresh_token:7:xyz" {
		t.Errorf("refreshKey = %q", got)
	}
}
