// Package jobpost implements the store-owner upload flow: posting
// creation with a templated description pass, owner posting listing,
// remove-last, and candidate match scoring.
package jobpost

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fl-jobs/internal/config"
	"fl-jobs/internal/domain"
	"fl-jobs/internal/repository"
)

var (
	ErrStoreOwnerOnly     = errors.New("job postings are created by store owners only")
	ErrGenerationInFlight = errors.New("a description generation is already pending for this owner")
	ErrPostingNotFound    = errors.New("job posting not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrNoPostings         = errors.New("no postings to remove")
)

type Service interface {
	// Create validates the form, runs the description pass (with the
	// simulated generation delay) and stores the posting. A second
	// Create while one is pending for the same owner is rejected.
	Create(ctx context.Context, user *domain.UserData, input domain.CreateJobPostingInput) (*domain.JobPosting, error)
	ListByOwner(user *domain.UserData) []domain.JobPosting
	// RemoveLast deletes the owner's most recent posting.
	RemoveLast(user *domain.UserData) (*domain.JobPosting, error)
	// MatchScore scores a fixture candidate against a posting's
	// requirements.
	MatchScore(postingID, candidateID string) (*domain.MatchResult, error)
	Candidates() []domain.Candidate
}

type service struct {
	postRepo      repository.JobPostRepository
	candidateRepo repository.CandidateRepository
	validate      *validator.Validate
	cfg           *config.Config

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(postRepo repository.JobPostRepository, candidateRepo repository.CandidateRepository, validate *validator.Validate, cfg *config.Config) Service {
	return &service{
		postRepo:      postRepo,
		candidateRepo: candidateRepo,
		validate:      validate,
		cfg:           cfg,
		inFlight:      make(map[string]bool),
	}
}

func (s *service) Create(ctx context.Context, user *domain.UserData, input domain.CreateJobPostingInput) (*domain.JobPosting, error) {
	if user.Role != domain.RoleStoreOwner {
		return nil, ErrStoreOwnerOnly
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	if err := s.acquire(user.Email); err != nil {
		return nil, err
	}
	defer s.release(user.Email)

	// Simulated generation latency, cancellable with the request.
	select {
	case <-time.After(s.cfg.GenerateDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	posting := &domain.JobPosting{
		ID:               uuid.NewString(),
		OwnerEmail:       user.Email,
		StoreName:        input.StoreName,
		Location:         input.Location,
		Position:         input.Position,
		WorkHours:        input.WorkHours,
		Wage:             input.Wage,
		Responsibilities: buildDescription(input),
		Requirements:     fallback(input.Requirements, "Relevant experience preferred"),
		Summary:          buildSummary(input),
		ImageURL:         input.ImageURL,
		CreatedAt:        time.Now(),
	}
	s.postRepo.Create(posting)
	return posting, nil
}

// acquire marks the owner's generation as pending; a second trigger
// while pending is a duplicate and gets rejected.
func (s *service) acquire(ownerEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[ownerEmail] {
		return ErrGenerationInFlight
	}
	s.inFlight[ownerEmail] = true
	return nil
}

func (s *service) release(ownerEmail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, ownerEmail)
}

func (s *service) ListByOwner(user *domain.UserData) []domain.JobPosting {
	return s.postRepo.ListByOwner(user.Email)
}

func (s *service) RemoveLast(user *domain.UserData) (*domain.JobPosting, error) {
	if user.Role != domain.RoleStoreOwner {
		return nil, ErrStoreOwnerOnly
	}
	p, ok := s.postRepo.RemoveLast(user.Email)
	if !ok {
		return nil, ErrNoPostings
	}
	return p, nil
}

func (s *service) MatchScore(postingID, candidateID string) (*domain.MatchResult, error) {
	posting, ok := s.postRepo.GetByID(postingID)
	if !ok {
		return nil, ErrPostingNotFound
	}
	candidate, ok := s.candidateRepo.GetByID(candidateID)
	if !ok {
		return nil, ErrCandidateNotFound
	}
	result := scoreMatch(posting.Requirements, candidate)
	return &result, nil
}

func (s *service) Candidates() []domain.Candidate {
	return s.candidateRepo.List()
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
