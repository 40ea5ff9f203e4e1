package domain

import "time"

// JobPosting is a listing created by a store owner through the
// upload screen. Responsibilities holds the enhanced description
// produced by the template builder.
type JobPosting struct {
	ID               string    `json:"id"`
	OwnerEmail       string    `json:"-"`
	StoreName        string    `json:"store_name"`
	Location         string    `json:"location"`
	Position         string    `json:"position"`
	WorkHours        string    `json:"work_hours"`
	Wage             string    `json:"wage"`
	Responsibilities string    `json:"responsibilities"`
	Requirements     string    `json:"requirements"`
	Summary          string    `json:"summary"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateJobPostingInput struct {
	StoreName        string `json:"store_name" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Position         string `json:"position" validate:"required"`
	WorkHours        string `json:"work_hours"`
	Wage             string `json:"wage"`
	Responsibilities string `json:"responsibilities"`
	Requirements     string `json:"requirements"`
	ImageURL         string `json:"image_url" validate:"omitempty,url"`
}
