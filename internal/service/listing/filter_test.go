package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service/listing"
)

func sampleStores() []domain.Listing {
	return repository.NewListingRepository().Stores()
}

func names(items []domain.Listing) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.Name
	}
	return out
}

func TestApplyFilters_AllPermissiveIsIdentity(t *testing.T) {
	stores := sampleStores()

	got := listing.ApplyFilters(stores, domain.DefaultFilters())

	assert.Equal(t, stores, got)
	assert.Equal(t,
		[]string{"Weymans-Palo", "LST-Margo", "Tech-Hub", "Health-Care"},
		names(got))
}

func TestApplyFilters_MinRating(t *testing.T) {
	opts := domain.DefaultFilters()
	opts.MinRating = 4.6

	got := listing.ApplyFilters(sampleStores(), opts)

	// 4.8 and 4.6 survive, in source order.
	assert.Equal(t, []string{"Tech-Hub", "Health-Care"}, names(got))
}

func TestApplyFilters_JobTypes(t *testing.T) {
	opts := domain.DefaultFilters()
	opts.JobTypes = []string{"Retail"}

	got := listing.ApplyFilters(sampleStores(), opts)

	assert.Equal(t, []string{"Weymans-Palo"}, names(got))
}

func TestApplyFilters_PriceBoundsInclusive(t *testing.T) {
	opts := domain.DefaultFilters()
	opts.PriceRange = [2]float64{15, 28}

	got := listing.ApplyFilters(sampleStores(), opts)

	// 15 and 28 sit exactly on the bounds and must survive; 35 not.
	assert.Equal(t, []string{"Weymans-Palo", "LST-Margo", "Health-Care"}, names(got))
}

func TestApplyFilters_AndSemantics(t *testing.T) {
	opts := domain.FilterOptions{
		PriceRange: [2]float64{0, 100},
		MinRating:  4.5,
		JobTypes:   []string{"Retail", "Tech"},
	}

	got := listing.ApplyFilters(sampleStores(), opts)

	// Weymans-Palo passes rating and type; LST-Margo fails both;
	// Tech-Hub passes both; Health-Care passes rating, fails type.
	assert.Equal(t, []string{"Weymans-Palo", "Tech-Hub"}, names(got))
}

func TestApplyFilters_NoMatches(t *testing.T) {
	opts := domain.DefaultFilters()
	opts.PriceRange = [2]float64{90, 100}

	got := listing.ApplyFilters(sampleStores(), opts)

	assert.Empty(t, got)
}

func TestApplyFilters_OrderPreserved(t *testing.T) {
	// Reverse the fixture order to prove output follows input order,
	// not any internal sort.
	stores := sampleStores()
	reversed := make([]domain.Listing, 0, len(stores))
	for i := len(stores) - 1; i >= 0; i-- {
		reversed = append(reversed, stores[i])
	}

	got := listing.ApplyFilters(reversed, domain.DefaultFilters())

	assert.Equal(t,
		[]string{"Health-Care", "Tech-Hub", "LST-Margo", "Weymans-Palo"},
		names(got))
}

func TestVisible_RoleSelectsList(t *testing.T) {
	repo := repository.NewRepositories(nil)
	svc := listing.NewService(repo.Listing, repo.Location)

	owners := svc.Visible(domain.RoleStoreOwner, domain.DefaultFilters())
	seekers := svc.Visible(domain.RoleJobSeeker, domain.DefaultFilters())

	assert.Len(t, owners, 4)
	assert.Equal(t, domain.KindStore, owners[0].Kind)
	assert.Len(t, seekers, 4)
	assert.Equal(t, domain.KindJob, seekers[0].Kind)
}

func TestLocationResults_Filtered(t *testing.T) {
	repo := repository.NewRepositories(nil)
	svc := listing.NewService(repo.Listing, repo.Location)

	opts := domain.DefaultFilters()
	opts.JobTypes = []string{"Retail"}

	got := svc.LocationResults("Mumbai, India", opts)

	assert.Equal(t, []string{"Raymond-Zenor", "Fashion-Hub", "Trendy-Wear"}, names(got))
}

func TestSearchLocations(t *testing.T) {
	repo := repository.NewRepositories(nil)
	svc := listing.NewService(repo.Listing, repo.Location)

	assert.Len(t, svc.SearchLocations(""), 20)
	assert.Equal(t, []string{"Mumbai, India"}, svc.SearchLocations("mum"))
	assert.Empty(t, svc.SearchLocations("atlantis"))
}
