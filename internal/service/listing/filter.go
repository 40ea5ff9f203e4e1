package listing

import "fl-jobs/internal/domain"

// ApplyFilters returns the subset of items surviving every active
// predicate, in source order. Single pass, no caching: the pipeline
// is re-run from the current filter value on every render.
func ApplyFilters(items []domain.Listing, opts domain.FilterOptions) []domain.Listing {
	out := make([]domain.Listing, 0, len(items))
	for _, item := range items {
		if opts.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
