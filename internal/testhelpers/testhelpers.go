// Package testhelpers provides shared fixtures for package tests: an
// application container without a database and an in-memory personnel store
// with the same absent-as-nil contract as the SQL repository.
package testhelpers

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/deppfellow/personnel-api/internal/config"
	"github.com/deppfellow/personnel-api/internal/model/person"
	"github.com/deppfellow/personnel-api/internal/server"
	"github.com/rs/zerolog"
)

// NewServer returns a Server for env with test-friendly config and a logger
// that writes through t.Log. DB is nil.
func NewServer(t *testing.T, env string) *server.Server {
	t.Helper()

	observability := config.DefaultObservabilityConfig()
	observability.Environment = env
	observability.HealthChecks.Checks = []string{"database"}

	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()

	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: env},
			Server: config.ServerConfig{
				Port:               "8080",
				ReadTimeout:        30,
				WriteTimeout:       30,
				IdleTimeout:        60,
				CORSAllowedOrigins: []string{"*"},
			},
			Observability: observability,
		},
		Logger: &logger,
	}
}

// MemoryPersonnel is a concurrency-safe in-memory personnel store.
type MemoryPersonnel struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]person.Person

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryPersonnel() *MemoryPersonnel {
	return &MemoryPersonnel{
		nextID: 1,
		rows:   make(map[int64]person.Person),
	}
}

func (m *MemoryPersonnel) ListAll(ctx context.Context) ([]person.PersonView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	records := make([]person.Person, 0, len(m.rows))
	for _, p := range m.rows {
		records = append(records, p)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	return person.ToViews(records), nil
}

func (m *MemoryPersonnel) FindByID(ctx context.Context, id int64) (*person.PersonView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return person.ToView(&p), nil
}

func (m *MemoryPersonnel) Create(ctx context.Context, view *person.PersonView) (*person.PersonView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	record := person.ToPersistence(view)
	if record == nil || record.Age < 0 {
		return nil, nil
	}

	record.ID = m.nextID
	m.nextID++
	m.rows[record.ID] = *record

	return person.ToView(record), nil
}

func (m *MemoryPersonnel) Update(ctx context.Context, view *person.PersonView) (*person.PersonView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if view == nil {
		return nil, nil
	}

	current, ok := m.rows[view.ID]
	if !ok {
		return nil, nil
	}

	merged := current.Patch(view)
	if merged == current {
		return person.ToView(&current), nil
	}
	m.rows[merged.ID] = merged

	return person.ToView(&merged), nil
}

func (m *MemoryPersonnel) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}

	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// Len reports the number of stored rows.
func (m *MemoryPersonnel) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
