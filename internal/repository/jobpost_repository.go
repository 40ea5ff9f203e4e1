package repository

import (
	"sync"

	"fl-jobs/internal/domain"
)

// JobPostRepository holds owner-created job postings for the life of
// the process. Postings are keyed by owner so "remove last post"
// only touches the caller's own listings.
type JobPostRepository interface {
	Create(posting *domain.JobPosting)
	ListByOwner(ownerEmail string) []domain.JobPosting
	GetByID(id string) (*domain.JobPosting, bool)
	RemoveLast(ownerEmail string) (*domain.JobPosting, bool)
}

type jobPostRepository struct {
	mu       sync.Mutex
	postings []domain.JobPosting
}

func NewJobPostRepository() JobPostRepository {
	return &jobPostRepository{}
}

func (r *jobPostRepository) Create(posting *domain.JobPosting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postings = append(r.postings, *posting)
}

func (r *jobPostRepository) ListByOwner(ownerEmail string) []domain.JobPosting {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobPosting
	for _, p := range r.postings {
		if p.OwnerEmail == ownerEmail {
			out = append(out, p)
		}
	}
	return out
}

func (r *jobPostRepository) GetByID(id string) (*domain.JobPosting, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.postings {
		if r.postings[i].ID == id {
			p := r.postings[i]
			return &p, true
		}
	}
	return nil, false
}

// RemoveLast deletes the owner's most recent posting and returns it.
func (r *jobPostRepository) RemoveLast(ownerEmail string) (*domain.JobPosting, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.postings) - 1; i >= 0; i-- {
		if r.postings[i].OwnerEmail == ownerEmail {
			p := r.postings[i]
			r.postings = append(r.postings[:i], r.postings[i+1:]...)
			return &p, true
		}
	}
	return nil, false
}
