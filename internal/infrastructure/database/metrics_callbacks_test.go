package database

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"parley-server/chat-api/internal/infrastructure/metrics"
)

type note struct {
	ID   uint
	Body string
}

func TestRegisterMetricsCallbacks_RecordsQueryDurations(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := registerMetricsCallbacks(db); err != nil {
		t.Fatalf("registerMetricsCallbacks() error = %v", err)
	}

	db.Create(&note{Body: "hello"})
	db.Find(&[]note{})

	series := testutil.CollectAndCount(metrics.DBQueryDuration, "parley_chat_api_db_query_duration_seconds")
	if series < 2 {
		t.Errorf("db query duration series = %d, want create and query recorded", series)
	}
}
