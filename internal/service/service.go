package service

import (
	"github.com/minio/minio-go/v7"

	"fl-jobs/internal/config"
	"fl-jobs/internal/pkg/validation"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service/auth"
	"fl-jobs/internal/service/jobpost"
	"fl-jobs/internal/service/listing"
	"fl-jobs/internal/service/media"
	"fl-jobs/internal/service/navigation"
)

type Services struct {
	Navigation *navigation.Manager
	Auth       auth.Service
	Listing    listing.Service
	JobPost    jobpost.Service
	Media      media.Service
}

func NewServices(repos *repository.Repositories, minioClient *minio.Client, cfg *config.Config) *Services {
	validate := validation.New()

	navManager := navigation.NewManager(repos.Session, cfg.SessionTTL, repository.SeedNotifications)
	authService := auth.NewService(repos.Session, navManager, validate, cfg)
	listingService := listing.NewService(repos.Listing, repos.Location)
	jobPostService := jobpost.NewService(repos.JobPost, repos.Candidate, validate, cfg)
	mediaService := media.NewService(minioClient, cfg)

	return &Services{
		Navigation: navManager,
		Auth:       authService,
		Listing:    listingService,
		JobPost:    jobPostService,
		Media:      mediaService,
	}
}
