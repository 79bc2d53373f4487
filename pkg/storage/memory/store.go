// Package memory is a process-lifetime implementation of the storage interfaces.
//
// Every resource lives in an ordered table guarded by a single store-wide mutex,
// so id assignment and list order stay consistent under concurrent requests.
// Records are copied in and out; callers never hold a pointer into the store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// Store implements the Storage interface in memory.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	accounts     *table[models.Account]
	transactions *table[models.Transaction]
	payments     *table[models.Payment]
	loans        *table[models.Loan]
	airtime      *table[models.AirtimePurchase]
	kyc          *table[models.KycRecord]
	limits       *table[models.AccountLimit]
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for lifecycle timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.init()
	return s
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) init() {
	s.accounts = newTable[models.Account]("acc")
	s.transactions = newTable[models.Transaction]("txn")
	s.payments = newTable[models.Payment]("pay")
	s.loans = newTable[models.Loan]("loan")
	s.airtime = newTable[models.AirtimePurchase]("air")
	s.kyc = newTable[models.KycRecord]("")
	s.limits = newTable[models.AccountLimit]("")
}

// Reset drops every record and restarts the id sequences.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
}

func (s *Store) clock() time.Time {
	return s.now().UTC()
}

// table is an insertion-ordered collection keyed by id.
type table[T any] struct {
	prefix string
	seq    int
	keys   []string
	rows   map[string]*T
}

func newTable[T any](prefix string) *table[T] {
	return &table[T]{prefix: prefix, rows: make(map[string]*T)}
}

// nextID advances the sequence; no id is handed out twice by the same table.
func (t *table[T]) nextID() string {
	t.seq++
	return fmt.Sprintf("%s-%03d", t.prefix, t.seq)
}

func (t *table[T]) insert(key string, row T) {
	t.keys = append(t.keys, key)
	t.rows[key] = &row
}

func (t *table[T]) get(key string) (*T, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// collect returns copies of the rows accepted by match, in insertion order.
func (t *table[T]) collect(match func(*T) bool) []T {
	out := make([]T, 0, len(t.keys))
	for _, key := range t.keys {
		row := t.rows[key]
		if match(row) {
			out = append(out, *row)
		}
	}
	return out
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s with ID %s: %w", kind, id, storage.ErrNotFound)
}

func invalidTransition(kind, id string, status any) error {
	return fmt.Errorf("%s %s is %v: %w", kind, id, status, storage.ErrInvalidTransition)
}

func ptr[T any](v T) *T {
	return &v
}
