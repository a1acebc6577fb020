package database

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bboard-api/internal/domain"
)

// recordingMetrics captures RecordDBQuery calls for assertions
type recordingMetrics struct {
	mu      sync.Mutex
	queries []recordedQuery
}

type recordedQuery struct {
	operation string
	table     string
	failed    bool
}

func (r *recordingMetrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, table: table, failed: err != nil})
}

func (r *recordingMetrics) UpdateDBStats(stats interface{}) {}

func (r *recordingMetrics) recorded() []recordedQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedQuery, len(r.queries))
	copy(out, r.queries)
	return out
}

func TestRegisterMetricsCallbacks(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	recorder := &recordingMetrics{}
	RegisterMetricsCallbacks(db, recorder)

	announcement := &domain.Announcement{Author: "Al", Title: "Hi", Text: "ok"}
	require.NoError(t, db.Create(announcement).Error)

	var found domain.Announcement
	require.NoError(t, db.First(&found, "id = ?", announcement.ID).Error)

	require.NoError(t, db.Delete(&domain.Announcement{}, "id = ?", announcement.ID).Error)

	operations := map[string]bool{}
	for _, q := range recorder.recorded() {
		operations[q.operation] = true
		assert.NotEmpty(t, q.table)
	}

	assert.True(t, operations["insert"], "insert should be recorded")
	assert.True(t, operations["select"], "select should be recorded")
	assert.True(t, operations["delete"], "delete should be recorded")
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&domain.Announcement{}))
	assert.True(t, migrator.HasTable(&domain.Comment{}))

	// Running it again over existing tables is fine
	require.NoError(t, AutoMigrate(db))
}
