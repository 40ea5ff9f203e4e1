package repository

import "fl-jobs/internal/domain"

// ListingRepository serves the read-only fixture listings. Stores are
// what owners browse, job openings are what seekers browse, and
// location results back the destination-search screen. Returned
// slices are copies; callers may filter them freely.
type ListingRepository interface {
	Stores() []domain.Listing
	JobOpenings() []domain.Listing
	LocationStores() []domain.Listing
	GetStore(id string) (*domain.Listing, bool)
}

type listingRepository struct {
	stores         []domain.Listing
	jobOpenings    []domain.Listing
	locationStores []domain.Listing
}

func NewListingRepository() ListingRepository {
	return &listingRepository{
		stores:         seedStores(),
		jobOpenings:    seedJobOpenings(),
		locationStores: seedLocationStores(),
	}
}

func (r *listingRepository) Stores() []domain.Listing {
	return copyListings(r.stores)
}

func (r *listingRepository) JobOpenings() []domain.Listing {
	return copyListings(r.jobOpenings)
}

func (r *listingRepository) LocationStores() []domain.Listing {
	return copyListings(r.locationStores)
}

// GetStore resolves a listing id across the fixture lists, stores
// first. IDs are unique within one list only, so order matters.
func (r *listingRepository) GetStore(id string) (*domain.Listing, bool) {
	for _, list := range [][]domain.Listing{r.stores, r.jobOpenings, r.locationStores} {
		for i := range list {
			if list[i].ID == id {
				l := list[i]
				return &l, true
			}
		}
	}
	return nil, false
}

func copyListings(src []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, len(src))
	copy(out, src)
	return out
}
