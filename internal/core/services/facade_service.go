package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	portsrepo "github.com/harborfleet/crewdesk/internal/core/ports/repositories"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/notifier"
	"github.com/harborfleet/crewdesk/internal/platform/metrics"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
	"github.com/harborfleet/crewdesk/internal/utils"
	"github.com/harborfleet/crewdesk/internal/utils/rotation"
)

// facadeService is the aggregate over the four dual-store collections. It
// owns the published snapshot: reads serve it without IO, mutations write
// through the repositories and patch it in place so callers see their own
// writes before the next reload.
type facadeService struct {
	BaseService
	crewRepo      portsrepo.CrewRepository
	shipRepo      portsrepo.ShipRepository
	loanRepo      portsrepo.LoanRepository
	standBackRepo portsrepo.StandBackRepository

	notifier  notifier.Notifier
	analytics *utils.PosthogClientWrapper
	now       func() time.Time

	mu   sync.RWMutex
	snap domain.Snapshot
}

// FacadeOption configures the facade service.
type FacadeOption func(*facadeService)

// WithNotifier installs the office notifier for operational events.
func WithNotifier(n notifier.Notifier) FacadeOption {
	return func(s *facadeService) { s.notifier = n }
}

// WithAnalytics installs the analytics client for product events.
func WithAnalytics(c *utils.PosthogClientWrapper) FacadeOption {
	return func(s *facadeService) { s.analytics = c }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) FacadeOption {
	return func(s *facadeService) { s.now = now }
}

// NewFacadeService creates the aggregate service over the given repositories.
func NewFacadeService(repos *portsrepo.RepositoryProvider, opts ...FacadeOption) *facadeService {
	s := &facadeService{
		crewRepo:      repos.CrewRepo,
		shipRepo:      repos.ShipRepo,
		loanRepo:      repos.LoanRepo,
		standBackRepo: repos.StandBackRepo,
		notifier:      notifier.NoopNotifier{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compile-time checks that the facade satisfies every service port it backs.
var (
	_ portssvc.SnapshotSvc  = (*facadeService)(nil)
	_ portssvc.ShipSvc      = (*facadeService)(nil)
	_ portssvc.CrewSvc      = (*facadeService)(nil)
	_ portssvc.LoanSvc      = (*facadeService)(nil)
	_ portssvc.StandBackSvc = (*facadeService)(nil)
)

// Snapshot returns the last published snapshot without blocking on IO.
// Patch helpers replace slices rather than mutate them, so handing out the
// struct is safe.
func (s *facadeService) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reload runs the full load pipeline: load all four collections, restamp
// rotation-derived crew statuses for today, and publish the result as one
// atomic snapshot swap. A hard failure on any collection keeps the previous
// snapshot in place.
func (s *facadeService) Reload(ctx context.Context) error {
	today := s.now()

	shipsRes := s.shipRepo.Load(ctx)
	crewRes := s.crewRepo.Load(ctx)
	loansRes := s.loanRepo.Load(ctx)
	standBackRes := s.standBackRepo.Load(ctx)

	var warnings []string
	for _, r := range []struct {
		name    string
		outcome dualstore.Outcome
		warning error
		err     error
	}{
		{"ships", shipsRes.Outcome, shipsRes.Warning, shipsRes.Err},
		{"crew", crewRes.Outcome, crewRes.Warning, crewRes.Err},
		{"loans", loansRes.Outcome, loansRes.Warning, loansRes.Err},
		{"standback", standBackRes.Outcome, standBackRes.Warning, standBackRes.Err},
	} {
		switch r.outcome {
		case dualstore.OutcomeHard:
			s.LogError(ctx, r.err, "Snapshot reload blocked, keeping previous snapshot", "collection", r.name)
			return fmt.Errorf("reload %s: %w", r.name, r.err)
		case dualstore.OutcomeSoft:
			warnings = append(warnings, r.warning.Error())
		}
	}

	snap := domain.Snapshot{
		Ships:     shipsRes.Value,
		Crew:      restampRotation(crewRes.Value, today),
		Loans:     loansRes.Value,
		StandBack: standBackRes.Value,
		Warnings:  warnings,
		LoadedAt:  today,
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.SnapshotReloads.Inc()
	s.LogInfo(ctx, "Snapshot reloaded",
		"ships", len(snap.Ships), "crew", len(snap.Crew),
		"loans", len(snap.Loans), "standback", len(snap.StandBack),
		"warnings", len(warnings))
	return nil
}

// restampRotation recomputes the on-board/at-home state of every person
// whose status is rotation-driven. Manual overrides (sick, out of service)
// and persons whose rotation data yields no opinion keep their stored
// status.
func restampRotation(crew []domain.Person, today time.Time) []domain.Person {
	out := make([]domain.Person, len(crew))
	copy(out, crew)
	for i := range out {
		p := &out[i]
		if !p.Status.Derivable() {
			continue
		}
		if p.ShipID == nil {
			p.Status = domain.StatusUnassigned
			continue
		}
		if p.StartDate == nil {
			continue
		}
		if status, ok := rotation.Derive(*p.StartDate, p.Regime, today); ok {
			p.Status = status
		}
	}
	return out
}

// notifyOffice delivers an operational notice fire-and-forget. The request
// that triggered it has already succeeded; a delivery failure is logged,
// never propagated.
func (s *facadeService) notifyOffice(ctx context.Context, subject, body string) {
	logger := s.GetLogger(ctx)
	go func() {
		nctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(nctx, subject, body); err != nil {
			logger.Warn("Failed to deliver office notification",
				"subject", subject, "error", err.Error())
		}
	}()
}

// warningText extracts the soft-failure notice of a result, empty on full
// success.
func warningText[T any](res dualstore.Result[T]) string {
	if res.Outcome == dualstore.OutcomeSoft && res.Warning != nil {
		return res.Warning.Error()
	}
	return ""
}

// upsertByID replaces the item with the same identity, appending when it is
// new. The input slice is never mutated.
func upsertByID[T any](items []T, identity func(T) string, item T) []T {
	id := identity(item)
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if identity(it) == id {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, it)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

// removeByID drops the item with the given identity. The input slice is
// never mutated.
func removeByID[T any](items []T, identity func(T) string, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if identity(it) == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

func personKey(p domain.Person) string          { return p.PersonID }
func shipKey(s domain.Ship) string              { return s.ShipID }
func loanKey(l domain.Loan) string              { return l.LoanID }
func recordKey(r domain.StandBackRecord) string { return r.RecordID }

func (s *facadeService) patchPerson(p domain.Person) {
	s.mu.Lock()
	s.snap.Crew = upsertByID(s.snap.Crew, personKey, p)
	s.mu.Unlock()
}

func (s *facadeService) patchShip(sh domain.Ship) {
	s.mu.Lock()
	s.snap.Ships = upsertByID(s.snap.Ships, shipKey, sh)
	s.mu.Unlock()
}

func (s *facadeService) patchLoan(l domain.Loan) {
	s.mu.Lock()
	s.snap.Loans = upsertByID(s.snap.Loans, loanKey, l)
	s.mu.Unlock()
}

func (s *facadeService) patchStandBack(r domain.StandBackRecord) {
	s.mu.Lock()
	s.snap.StandBack = upsertByID(s.snap.StandBack, recordKey, r)
	s.mu.Unlock()
}

func (s *facadeService) personByID(id string) (domain.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.snap.Crew {
		if p.PersonID == id {
			return p, true
		}
	}
	return domain.Person{}, false
}

func (s *facadeService) shipByID(id string) (domain.Ship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.snap.Ships {
		if sh.ShipID == id {
			return sh, true
		}
	}
	return domain.Ship{}, false
}

func (s *facadeService) loanByID(id string) (domain.Loan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.snap.Loans {
		if l.LoanID == id {
			// Clone the history so ledger transitions never alias the
			// published snapshot.
			l.PaymentHistory = append([]domain.PaymentEvent(nil), l.PaymentHistory...)
			return l, true
		}
	}
	return domain.Loan{}, false
}

func (s *facadeService) standBackByID(id string) (domain.StandBackRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.snap.StandBack {
		if r.RecordID == id {
			r.History = append([]domain.RepaymentEvent(nil), r.History...)
			return r, true
		}
	}
	return domain.StandBackRecord{}, false
}

// openStandBackForPerson returns the person's open ledger record, if any.
func (s *facadeService) openStandBackForPerson(pid string) (domain.StandBackRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.snap.StandBack {
		if r.PersonID == pid && r.Status == domain.StandBackOpen {
			r.History = append([]domain.RepaymentEvent(nil), r.History...)
			return r, true
		}
	}
	return domain.StandBackRecord{}, false
}
