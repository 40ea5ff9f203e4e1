package domain

// FilterOptions is the active predicate set applied to listings.
// PriceRange bounds are inclusive and expected to satisfy min <= max;
// the caller enforces that, not the filter itself. An empty JobTypes
// slice means no job-type restriction.
type FilterOptions struct {
	PriceRange [2]float64 `json:"price_range"`
	MinRating  float64    `json:"min_rating" validate:"gte=0,lte=5"`
	JobTypes   []string   `json:"job_types"`
}

// DefaultFilters returns the all-permissive filter the app starts
// with: it keeps every fixture listing.
func DefaultFilters() FilterOptions {
	return FilterOptions{
		PriceRange: [2]float64{0, 100},
		MinRating:  0,
		JobTypes:   nil,
	}
}

// Matches reports whether the listing survives every active
// predicate (AND semantics).
func (f FilterOptions) Matches(l Listing) bool {
	if l.PriceValue < f.PriceRange[0] || l.PriceValue > f.PriceRange[1] {
		return false
	}
	if l.Rating < f.MinRating {
		return false
	}
	if len(f.JobTypes) > 0 {
		found := false
		for _, t := range f.JobTypes {
			if t == l.JobType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ActiveCount returns how many predicate groups deviate from the
// all-permissive default. Shown as the filter badge on the home
// screen.
func (f FilterOptions) ActiveCount() int {
	n := 0
	if len(f.JobTypes) > 0 {
		n++
	}
	if f.MinRating > 0 {
		n++
	}
	if f.PriceRange[0] > 0 || f.PriceRange[1] < 100 {
		n++
	}
	return n
}
