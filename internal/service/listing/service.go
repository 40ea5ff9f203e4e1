// Package listing answers "what does this client see": the fixture
// list their role browses, narrowed by their active filters.
package listing

import (
	"errors"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/repository"
)

var ErrListingNotFound = errors.New("listing not found")

type Service interface {
	// Visible returns the home-screen listing for the role: stores
	// for owners, job openings for seekers, filtered.
	Visible(role domain.UserRole, filters domain.FilterOptions) []domain.Listing
	// LocationResults returns the destination-search results for the
	// searched location, filtered.
	LocationResults(location string, filters domain.FilterOptions) []domain.Listing
	// SearchLocations narrows the destination directory by substring.
	SearchLocations(query string) []string
	GetStore(id string) (*domain.Listing, error)
}

type service struct {
	listingRepo  repository.ListingRepository
	locationRepo repository.LocationRepository
}

func NewService(listingRepo repository.ListingRepository, locationRepo repository.LocationRepository) Service {
	return &service{listingRepo: listingRepo, locationRepo: locationRepo}
}

func (s *service) Visible(role domain.UserRole, filters domain.FilterOptions) []domain.Listing {
	var raw []domain.Listing
	if role == domain.RoleStoreOwner {
		raw = s.listingRepo.Stores()
	} else {
		raw = s.listingRepo.JobOpenings()
	}
	return ApplyFilters(raw, filters)
}

// LocationResults ignores the location name for data selection (the
// fixture set is the same for every destination) but the caller keeps
// it for display.
func (s *service) LocationResults(_ string, filters domain.FilterOptions) []domain.Listing {
	return ApplyFilters(s.listingRepo.LocationStores(), filters)
}

func (s *service) SearchLocations(query string) []string {
	return s.locationRepo.Search(query)
}

func (s *service) GetStore(id string) (*domain.Listing, error) {
	l, ok := s.listingRepo.GetStore(id)
	if !ok {
		return nil, ErrListingNotFound
	}
	return l, nil
}
