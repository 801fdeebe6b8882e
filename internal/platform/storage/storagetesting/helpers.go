package storagetesting

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"github.com/MichalMitros/syntara-client/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// CleanupData deletes all client state rows.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	if _, err := table.ClientState.DELETE().WHERE(table.ClientState.Key.IS_NOT_NULL()).Exec(exc); err != nil {
		t.Fatal("can't cleanup client_state", err)
	}
}

// Memory is in-memory key-value storage for tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns Memory prefilled with provided values.
func NewMemory(values map[string]string) *Memory {
	mem := &Memory{values: make(map[string]string, len(values))}
	for key, value := range values {
		mem.values[key] = value
	}
	return mem
}

// Get returns value stored under key or platform.ErrKeyNotFound.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return "", platform.ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete removes provided keys.
func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

// Snapshot returns copy of stored values.
func (m *Memory) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	values := make(map[string]string, len(m.values))
	for key, value := range m.values {
		values[key] = value
	}
	return values
}
