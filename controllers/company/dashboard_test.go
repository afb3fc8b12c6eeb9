package company

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/sparklean/cleaning-api/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return gdb
}

// Each per-status counter must carry its own status condition; reusing
// one chained query would make every count report the company total.
func TestAppointmentCountQueryPerStatus(t *testing.T) {
	gdb := dryRunDB(t)

	statuses := []models.AppointmentStatus{
		models.StatusScheduled,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	}
	for _, status := range statuses {
		var n int64
		stmt := appointmentCountQuery(gdb, 7, status).Count(&n).Statement

		sql := stmt.SQL.String()
		if !strings.Contains(sql, "company_id") || !strings.Contains(sql, "status") {
			t.Errorf("%s: count query lost its filters: %s", status, sql)
		}

		var found bool
		for _, v := range stmt.Vars {
			if v == status {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: status missing from query vars %v", status, stmt.Vars)
		}
	}
}
