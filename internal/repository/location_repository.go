package repository

import "strings"

// LocationRepository serves the destination directory shown on the
// location-input screen.
type LocationRepository interface {
	List() []string
	Search(query string) []string
}

type locationRepository struct {
	locations []string
}

func NewLocationRepository() LocationRepository {
	return &locationRepository{locations: seedLocations()}
}

func (r *locationRepository) List() []string {
	out := make([]string, len(r.locations))
	copy(out, r.locations)
	return out
}

// Search returns locations containing the query, case-insensitive.
// An empty query returns the full directory.
func (r *locationRepository) Search(query string) []string {
	if query == "" {
		return r.List()
	}
	q := strings.ToLower(query)
	var out []string
	for _, loc := range r.locations {
		if strings.Contains(strings.ToLower(loc), q) {
			out = append(out, loc)
		}
	}
	return out
}
