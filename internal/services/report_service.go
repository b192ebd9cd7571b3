package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teampulse-be/internal/models"
)

// Upstream is the slice of the HR backend the report service depends on.
type Upstream interface {
	FetchWorkLogs(ctx context.Context, employeeID string, from, to time.Time) ([]models.WorkLogRecord, error)
	FetchTickets(ctx context.Context, employeeID string, from, to time.Time) ([]models.TicketRecord, error)
	FetchEmployees(ctx context.Context) ([]models.EmployeeOption, error)
}

type FetchState string

const (
	StateIdle    FetchState = "idle"
	StateLoading FetchState = "loading"
	StateOK      FetchState = "ok"
	StateError   FetchState = "error"
)

// SourceStatus is the per-fetch result slot. Work logs and tickets each get
// their own, so one source failing never masks or overwrites the other.
type SourceStatus struct {
	State  FetchState `json:"state"`
	Detail string     `json:"detail,omitempty"`
}

// Snapshot holds one fetched dataset for a filter selection. A failed fetch
// leaves its collection empty and its status slot carrying the error.
type Snapshot struct {
	WorkLogs      []models.WorkLogRecord `json:"-"`
	Tickets       []models.TicketRecord  `json:"-"`
	WorkLogStatus SourceStatus           `json:"workLogs"`
	TicketStatus  SourceStatus           `json:"tickets"`
	FetchedAt     time.Time              `json:"fetchedAt"`
}

type snapshotEntry struct {
	snap *Snapshot
	gen  uint64
}

// ReportService coordinates upstream fetches. Snapshots are cached per
// filter selection with a TTL; each fetch carries a generation number and a
// completion that is no longer the latest for its key is discarded, so a
// stale response can never clobber a newer one.
type ReportService struct {
	upstream  Upstream
	ttl       time.Duration
	rosterTTL time.Duration

	mu        sync.Mutex
	gen       uint64
	latest    map[string]uint64
	snapshots map[string]*snapshotEntry
	roster    []models.EmployeeOption
	rosterAt  time.Time
}

func NewReportService(upstream Upstream, ttl, rosterTTL time.Duration) *ReportService {
	return &ReportService{
		upstream:  upstream,
		ttl:       ttl,
		rosterTTL: rosterTTL,
		latest:    make(map[string]uint64),
		snapshots: make(map[string]*snapshotEntry),
	}
}

func snapshotKey(employeeID string, from, to time.Time) string {
	return fmt.Sprintf("%s|%s|%s", employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// Snapshot returns the dataset for a filter selection, fetching work logs
// and tickets concurrently when the cache has nothing fresh. refresh forces
// a refetch regardless of cache state.
func (s *ReportService) Snapshot(ctx context.Context, employeeID string, from, to time.Time, refresh bool) *Snapshot {
	key := snapshotKey(employeeID, from, to)

	s.mu.Lock()
	if !refresh {
		if e, ok := s.snapshots[key]; ok && time.Since(e.snap.FetchedAt) < s.ttl {
			s.mu.Unlock()
			return e.snap
		}
	}
	s.gen++
	gen := s.gen
	s.latest[key] = gen
	s.mu.Unlock()

	snap := &Snapshot{
		WorkLogStatus: SourceStatus{State: StateLoading},
		TicketStatus:  SourceStatus{State: StateLoading},
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		logs, err := s.upstream.FetchWorkLogs(ctx, employeeID, from, to)
		if err != nil {
			snap.WorkLogs = nil
			snap.WorkLogStatus = SourceStatus{State: StateError, Detail: err.Error()}
			return
		}
		snap.WorkLogs = logs
		snap.WorkLogStatus = SourceStatus{State: StateOK}
	}()
	go func() {
		defer wg.Done()
		tickets, err := s.upstream.FetchTickets(ctx, employeeID, from, to)
		if err != nil {
			snap.Tickets = nil
			snap.TicketStatus = SourceStatus{State: StateError, Detail: err.Error()}
			return
		}
		snap.Tickets = tickets
		snap.TicketStatus = SourceStatus{State: StateOK}
	}()
	wg.Wait()
	snap.FetchedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest[key] != gen {
		// Superseded while in flight; the caller still gets data, but the
		// cache keeps whatever the newer request stored.
		if e, ok := s.snapshots[key]; ok {
			return e.snap
		}
		return snap
	}
	s.snapshots[key] = &snapshotEntry{snap: snap, gen: gen}
	return snap
}

// EmployeeOptions returns the roster, cached with its own TTL since it
// changes far less often than report data.
func (s *ReportService) EmployeeOptions(ctx context.Context) ([]models.EmployeeOption, error) {
	s.mu.Lock()
	if s.roster != nil && time.Since(s.rosterAt) < s.rosterTTL {
		roster := s.roster
		s.mu.Unlock()
		return roster, nil
	}
	s.mu.Unlock()

	roster, err := s.upstream.FetchEmployees(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.roster = roster
	s.rosterAt = time.Now()
	s.mu.Unlock()
	return roster, nil
}

// Sweep drops cached snapshots older than the TTL and returns how many were
// removed. Called by the janitor. The latest-generation marker is only
// cleared when it still belongs to the expired entry: a newer fetch may be
// in flight for the key, and its completion must still find its own
// generation current.
func (s *ReportService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, e := range s.snapshots {
		if now.Sub(e.snap.FetchedAt) >= s.ttl {
			delete(s.snapshots, key)
			if s.latest[key] == e.gen {
				delete(s.latest, key)
			}
			removed++
		}
	}
	return removed
}
