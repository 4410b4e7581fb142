package services

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"explorewithme/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memStore is an in-memory request store shared by the fake repositories.
// Reads return copies so callers cannot mutate stored state without a write.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	events   map[int64]*domain.Event
	requests map[int64]*domain.Request
	nextID   int64
	countErr error
	undo     []func()
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		events:   make(map[int64]*domain.Event),
		requests: make(map[int64]*domain.Request),
		nextID:   1,
	}
}

func (m *memStore) addUser(ids ...int64) {
	for _, id := range ids {
		m.users[id] = &domain.User{ID: id, Name: "user"}
	}
}

func (m *memStore) addEvent(e *domain.Event) {
	m.events[e.ID] = e
}

func (m *memStore) addRequest(eventID, requesterID int64, status domain.RequestStatus) *domain.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	req := &domain.Request{
		ID:          m.nextID,
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, int(m.nextID), time.UTC),
	}
	m.nextID++
	m.requests[req.ID] = req
	return copyRequest(req)
}

func (m *memStore) status(id int64) domain.RequestStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[id].Status
}

func (m *memStore) countStatus(eventID int64, status domain.RequestStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.requests {
		if r.EventID == eventID && r.Status == status {
			n++
		}
	}
	return n
}

// setStatus changes a stored status and journals the old value for rollback. Caller holds m.mu.
func (m *memStore) setStatus(r *domain.Request, status domain.RequestStatus) {
	prev := r.Status
	r.Status = status
	m.undo = append(m.undo, func() { r.Status = prev })
}

// commitOutside changes a status as a concurrent transaction that has already
// committed would. It is not journaled, so a failing transaction keeps it.
func (m *memStore) commitOutside(id int64, status domain.RequestStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[id].Status = status
}

func copyRequest(r *domain.Request) *domain.Request {
	c := *r
	return &c
}

func (m *memStore) sorted(match func(*domain.Request) bool) []*domain.Request {
	out := []*domain.Request{}
	for _, r := range m.requests {
		if match(r) {
			out = append(out, copyRequest(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeTransactor serializes transactions and undoes the writes fn made when it fails.
type fakeTransactor struct {
	store *memStore
	mu    sync.Mutex
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	f.store.mu.Lock()
	f.store.undo = nil
	f.store.mu.Unlock()

	err := fn(ctx)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if err != nil {
		for i := len(f.store.undo) - 1; i >= 0; i-- {
			f.store.undo[i]()
		}
	}
	f.store.undo = nil
	return err
}

type fakeUserRepo struct{ store *memStore }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if u, ok := f.store.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

type fakeEventRepo struct {
	store  *memStore
	locked int
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if e, ok := f.store.events[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	f.store.mu.Lock()
	f.locked++
	f.store.mu.Unlock()
	return f.GetByID(ctx, id)
}

// fakeRequestRepo guards status writes like the SQL repository does.
// afterGetByID and afterListByIDs run once the read returns, outside any lock.
type fakeRequestRepo struct {
	store          *memStore
	afterGetByID   func()
	afterListByIDs func()
}

func (f *fakeRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.EventID == req.EventID && r.RequesterID == req.RequesterID {
			return domain.ErrDuplicateRequest
		}
	}
	req.ID = s.nextID
	s.nextID++
	s.requests[req.ID] = copyRequest(req)
	id := req.ID
	s.undo = append(s.undo, func() { delete(s.requests, id) })
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	if f.afterGetByID != nil {
		defer f.afterGetByID()
	}
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.requests[id]; ok {
		return copyRequest(r), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestRepo) GetByEventAndRequester(ctx context.Context, eventID, requesterID int64) (*domain.Request, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.EventID == eventID && r.RequesterID == requesterID {
			return copyRequest(r), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Request, error) {
	if f.afterListByIDs != nil {
		defer f.afterListByIDs()
	}
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return s.sorted(func(r *domain.Request) bool { return want[r.ID] }), nil
}

func (f *fakeRequestRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Request, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(r *domain.Request) bool { return r.EventID == eventID }), nil
}

func (f *fakeRequestRepo) ListByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) ([]*domain.Request, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(r *domain.Request) bool { return r.EventID == eventID && r.Status == status }), nil
}

func (f *fakeRequestRepo) ListByRequesterID(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(r *domain.Request) bool { return r.RequesterID == requesterID }), nil
}

func (f *fakeRequestRepo) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error) {
	if f.store.countErr != nil {
		return 0, f.store.countErr
	}
	return f.store.countStatus(eventID, status), nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, req *domain.Request, from ...domain.RequestStatus) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[req.ID]
	if !ok || !slices.Contains(from, r.Status) {
		return domain.ErrStatusChanged
	}
	s.setStatus(r, req.Status)
	return nil
}

func (f *fakeRequestRepo) UpdateStatuses(ctx context.Context, ids []int64, from, to domain.RequestStatus) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if r, ok := s.requests[id]; !ok || r.Status != from {
			return domain.ErrStatusChanged
		}
	}
	for _, id := range ids {
		s.setStatus(s.requests[id], to)
	}
	return nil
}

// fakeStats records hits and serves canned view counts.
type fakeStats struct {
	mu      sync.Mutex
	hits    []domain.Hit
	views   []domain.ViewStats
	hitErr  error
	statErr error
	unique  bool
	start   time.Time
}

func (f *fakeStats) Hit(ctx context.Context, hit domain.Hit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hitErr != nil {
		return f.hitErr
	}
	f.hits = append(f.hits, hit)
	return nil
}

func (f *fakeStats) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unique = unique
	f.start = start
	if f.statErr != nil {
		return nil, f.statErr
	}
	return f.views, nil
}
