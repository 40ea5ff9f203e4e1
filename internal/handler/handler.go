package handler

import (
	"fl-jobs/internal/pkg/validation"
	"fl-jobs/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Navigation   *NavigationHandler
	Listing      *ListingHandler
	Notification *NotificationHandler
	User         *UserHandler
	JobPost      *JobPostHandler
	Media        *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	validate := validation.New()

	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Navigation:   NewNavigationHandler(services.Listing),
		Listing:      NewListingHandler(services.Listing),
		Notification: NewNotificationHandler(),
		User:         NewUserHandler(validate),
		JobPost:      NewJobPostHandler(services.JobPost),
		Media:        NewMediaHandler(services.Media),
	}
}
