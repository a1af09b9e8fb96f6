package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"studentfit/fitness-planner/internal/domain"
	"studentfit/fitness-planner/internal/plangen"
	"studentfit/fitness-planner/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrAlreadyOnboarded     = errors.New("session already has a plan")
	ErrGenerationInProgress = errors.New("plan generation already in progress")
	ErrPlanGeneration       = errors.New("plan generation failed")
	ErrNoPlanYet            = errors.New("session has no plan yet")
)

// SessionState is the onboarding state of a session.
type SessionState string

const (
	StateNoProfile  SessionState = "no_profile"
	StateGenerating SessionState = "generating"
	StateHasPlan    SessionState = "has_plan"
)

// Session is the explicit, controller-owned session state. The id is an
// opaque token minted fresh on every session start, so persisted history
// is only reachable within the same session unless resume is enabled.
type Session struct {
	ID        string                  `json:"id"`
	State     SessionState            `json:"state"`
	Profile   *domain.Profile         `json:"profile,omitempty"`
	Plan      *domain.Plan            `json:"plan,omitempty"`
	Progress  []domain.ProgressMetric `json:"progress"`
	CreatedAt time.Time               `json:"createdAt"`
}

// ProgressEntry is the user-reported input for one daily log. The score
// is derived by the service, never supplied by the caller.
type ProgressEntry struct {
	Date             string
	Weight           float64
	EnergyLevel      int
	WorkoutCompleted bool
}

// SessionService orchestrates onboarding, plan generation, and progress
// logging. Transitions: NoProfile -> Generating -> HasPlan, with
// Generating -> NoProfile on generation failure. There is no transition
// out of HasPlan.
type SessionService interface {
	Start(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	CompleteOnboarding(ctx context.Context, id string, profile domain.Profile) (*Session, error)
	LogProgress(ctx context.Context, id string, entry ProgressEntry) (domain.ProgressMetric, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	generator plangen.Generator
	records   repository.UserRecordRepository
	resume    bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionService creates a new instance of sessionService. resume
// enables the load-existing-record path on Start; the shipped default
// is off.
func NewSessionService(generator plangen.Generator, records repository.UserRecordRepository, resume bool) SessionService {
	return &sessionService{
		generator: generator,
		records:   records,
		resume:    resume,
		sessions:  make(map[string]*Session),
	}
}

// Start creates a new session in NoProfile with a fresh opaque id. With
// resume enabled, an existing record for the id would seed the session
// directly into HasPlan; since ids are regenerated every start, that
// lookup misses in practice, exactly like the disabled loader in the
// original client.
func (s *sessionService) Start(ctx context.Context) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		State:     StateNoProfile,
		Progress:  []domain.ProgressMetric{},
		CreatedAt: time.Now().UTC(),
	}

	if s.resume {
		record, err := s.records.GetByID(ctx, session.ID)
		switch {
		case err == nil:
			session.Profile = &record.Profile
			session.Plan = &record.CurrentPlan
			session.Progress = append([]domain.ProgressMetric{}, record.Progress...)
			session.State = StateHasPlan
		case errors.Is(err, repository.ErrNotFound):
			// No prior record; proceed to onboarding.
		default:
			// Load failures are logged only; the user proceeds to
			// onboarding as if no record existed.
			log.Printf("failed to load record for session %s: %v", session.ID, err)
		}
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.snapshot(), nil
}

// Get returns a snapshot of the session.
func (s *sessionService) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// CompleteOnboarding derives the BMI, parks the session in Generating,
// and issues exactly one generation call. On failure the session
// reverts to NoProfile and nothing is persisted. On success the full
// record (profile + plan + empty progress) is persisted; a persist
// failure is logged and swallowed, the session still moves to HasPlan.
func (s *sessionService) CompleteOnboarding(ctx context.Context, id string, profile domain.Profile) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	switch session.State {
	case StateGenerating:
		s.mu.Unlock()
		return nil, ErrGenerationInProgress
	case StateHasPlan:
		s.mu.Unlock()
		return nil, ErrAlreadyOnboarded
	}
	session.State = StateGenerating
	s.mu.Unlock()

	// BMI is frozen into the profile here, once.
	profile.DeriveBMI()

	plan, err := s.generator.Generate(ctx, profile)

	s.mu.Lock()
	if err != nil {
		session.State = StateNoProfile
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}
	session.Profile = &profile
	session.Plan = plan
	session.Progress = []domain.ProgressMetric{}
	session.State = StateHasPlan
	record := session.record()
	snapshot := session.snapshot()
	s.mu.Unlock()

	if err := s.records.Upsert(ctx, record); err != nil {
		log.Printf("failed to persist record for session %s: %v", id, err)
	}

	return snapshot, nil
}

// LogProgress derives the score, appends the metric, and rewrites the
// full record. Appends never edit or drop earlier entries; duplicate
// dates are allowed. A persist failure is logged and swallowed.
func (s *sessionService) LogProgress(ctx context.Context, id string, entry ProgressEntry) (domain.ProgressMetric, error) {
	date := entry.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	metric := domain.ProgressMetric{
		Date:             date,
		Weight:           entry.Weight,
		EnergyLevel:      entry.EnergyLevel,
		WorkoutCompleted: entry.WorkoutCompleted,
		Score:            domain.ComputeScore(entry.EnergyLevel, entry.WorkoutCompleted),
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return domain.ProgressMetric{}, ErrSessionNotFound
	}
	if session.State != StateHasPlan {
		s.mu.Unlock()
		return domain.ProgressMetric{}, ErrNoPlanYet
	}
	session.Progress = append(session.Progress, metric)
	record := session.record()
	s.mu.Unlock()

	if err := s.records.Upsert(ctx, record); err != nil {
		log.Printf("failed to persist progress for session %s: %v", id, err)
	}

	return metric, nil
}

// record assembles the full persisted tuple from the session. Callers
// must hold the service mutex.
func (session *Session) record() *domain.UserRecord {
	return &domain.UserRecord{
		ID:          session.ID,
		Profile:     *session.Profile,
		CurrentPlan: *session.Plan,
		Progress:    append([]domain.ProgressMetric{}, session.Progress...),
	}
}

// snapshot returns a copy safe to read outside the service mutex.
func (session *Session) snapshot() *Session {
	copied := *session
	copied.Progress = append([]domain.ProgressMetric{}, session.Progress...)
	return &copied
}
