package repository

import "fl-jobs/internal/domain"

type CandidateRepository interface {
	List() []domain.Candidate
	GetByID(id string) (*domain.Candidate, bool)
}

type candidateRepository struct {
	candidates []domain.Candidate
}

func NewCandidateRepository() CandidateRepository {
	return &candidateRepository{candidates: seedCandidates()}
}

func (r *candidateRepository) List() []domain.Candidate {
	out := make([]domain.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

func (r *candidateRepository) GetByID(id string) (*domain.Candidate, bool) {
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			c := r.candidates[i]
			return &c, true
		}
	}
	return nil, false
}
