package repository

import (
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Listing   ListingRepository
	Location  LocationRepository
	Candidate CandidateRepository
	JobPost   JobPostRepository
	Session   SessionRepository
}

func NewRepositories(rdb *redis.Client) *Repositories {
	return &Repositories{
		Listing:   NewListingRepository(),
		Location:  NewLocationRepository(),
		Candidate: NewCandidateRepository(),
		JobPost:   NewJobPostRepository(),
		Session:   NewSessionRepository(rdb),
	}
}
