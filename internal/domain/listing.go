package domain

// ListingKind tags the concrete shape a Listing came from: a store
// card shown to owners or a job opening shown to seekers.
type ListingKind string

const (
	KindStore ListingKind = "store"
	KindJob   ListingKind = "job"
)

type Owner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Listing is a store or job record from the static fixture data.
// IDs are unique only within a single fixture list. Price is the
// display string; PriceValue is the numeric $/hour used for
// filtering. Rating is on a 0-5 scale.
type Listing struct {
	ID          string      `json:"id"`
	Kind        ListingKind `json:"kind"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Price       string      `json:"price"`
	PriceValue  float64     `json:"price_value"`
	Rating      float64     `json:"rating"`
	JobType     string      `json:"job_type"`
	Image       string      `json:"image"`
	Owner       Owner       `json:"owner"`
	Description string      `json:"description,omitempty"`
}

// JobTypes is the closed set a listing's JobType is drawn from and
// the options offered on the filters screen.
var JobTypes = []string{
	"Retail",
	"Food Service",
	"Tech",
	"Healthcare",
	"Education",
	"Construction",
	"Transportation",
}
