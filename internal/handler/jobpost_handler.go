package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/middleware"
	"fl-jobs/internal/service/jobpost"
)

type JobPostHandler struct {
	jobPostService jobpost.Service
}

func NewJobPostHandler(jobPostService jobpost.Service) *JobPostHandler {
	return &JobPostHandler{jobPostService: jobPostService}
}

// Create validates the posting form and runs the description pass.
// A second create while one is pending for the same owner returns
// 409.
func (h *JobPostHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateJobPostingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	posting, err := h.jobPostService.Create(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		if errors.Is(err, jobpost.ErrStoreOwnerOnly) {
			return middleware.Forbidden("Only store owners can create job postings")
		}
		if errors.Is(err, jobpost.ErrGenerationInFlight) {
			return middleware.Conflict("A posting is already being generated")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(posting)
}

func (h *JobPostHandler) List(c *fiber.Ctx) error {
	postings := h.jobPostService.ListByOwner(middleware.GetCurrentUser(c))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"postings": postings,
		"total":    len(postings),
	})
}

// RemoveLast deletes the caller's most recent posting.
func (h *JobPostHandler) RemoveLast(c *fiber.Ctx) error {
	removed, err := h.jobPostService.RemoveLast(middleware.GetCurrentUser(c))
	if err != nil {
		if errors.Is(err, jobpost.ErrStoreOwnerOnly) {
			return middleware.Forbidden("Only store owners can remove postings")
		}
		if errors.Is(err, jobpost.ErrNoPostings) {
			return middleware.NotFound("No postings to remove")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"removed": removed,
	})
}

func (h *JobPostHandler) Candidates(c *fiber.Ctx) error {
	candidates := h.jobPostService.Candidates()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"candidates": candidates,
	})
}

func (h *JobPostHandler) MatchScore(c *fiber.Ctx) error {
	result, err := h.jobPostService.MatchScore(c.Params("id"), c.Params("candidateId"))
	if err != nil {
		if errors.Is(err, jobpost.ErrPostingNotFound) {
			return middleware.NotFound("Job posting not found")
		}
		if errors.Is(err, jobpost.ErrCandidateNotFound) {
			return middleware.NotFound("Candidate not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
