package repository

import (
	"strings"
	"testing"

	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

// captureQueries records the SQL of every query the db runs.
func captureQueries(t *testing.T, db *gorm.DB) *[]string {
	t.Helper()
	var captured []string
	err := db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		captured = append(captured, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return &captured
}

func TestAuditLogSearchSQL(t *testing.T) {
	db := dryRunDB(t)
	queries := captureQueries(t, db)

	userID, before := int64(3), int64(100)
	_, err := NewAuditLogRepository().Search(db, entity.AuditLogFilter{
		Action: entity.AuditActionUserLogin,
		UserID: &userID,
		Before: &before,
		Limit:  21,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*queries) == 0 {
		t.Fatal("no query captured")
	}

	got := (*queries)[0]
	for _, want := range []string{`FROM "audit_logs"`, "action = $1", "user_id = $2", "id < $3", "ORDER BY id DESC", "LIMIT"} {
		if !strings.Contains(got, want) {
			t.Errorf("query %s missing %q", got, want)
		}
	}
}

func TestAuditLogSearchWithoutFilters(t *testing.T) {
	db := dryRunDB(t)
	queries := captureQueries(t, db)

	if _, err := NewAuditLogRepository().Search(db, entity.AuditLogFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := (*queries)[0]
	if strings.Contains(got, "WHERE") || strings.Contains(got, "LIMIT") {
		t.Errorf("unexpected clauses in %s", got)
	}
}
