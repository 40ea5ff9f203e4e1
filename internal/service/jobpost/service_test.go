package jobpost_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fl-jobs/internal/config"
	"fl-jobs/internal/domain"
	"fl-jobs/internal/pkg/validation"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service/jobpost"
)

func newTestService(delay time.Duration) jobpost.Service {
	return jobpost.NewService(
		repository.NewJobPostRepository(),
		repository.NewCandidateRepository(),
		validation.New(),
		&config.Config{GenerateDelay: delay},
	)
}

func owner() *domain.UserData {
	return &domain.UserData{
		Name: "Asha", Email: "asha@example.com",
		Phone: "9876543210", Role: domain.RoleStoreOwner,
	}
}

func validInput() domain.CreateJobPostingInput {
	return domain.CreateJobPostingInput{
		StoreName:        "Corner Mart",
		Location:         "Downtown",
		Position:         "Cashier",
		WorkHours:        "9am-5pm",
		Wage:             "18$/hour",
		Responsibilities: "Operate register, restock shelves",
		Requirements:     "Retail sales customer service",
	}
}

func TestCreate_StoreOwnerOnly(t *testing.T) {
	svc := newTestService(time.Millisecond)
	seeker := &domain.UserData{Email: "s@example.com", Role: domain.RoleJobSeeker}

	posting, err := svc.Create(context.Background(), seeker, validInput())

	assert.ErrorIs(t, err, jobpost.ErrStoreOwnerOnly)
	assert.Nil(t, posting)
}

func TestCreate_ValidatesInput(t *testing.T) {
	svc := newTestService(time.Millisecond)
	input := validInput()
	input.StoreName = ""

	_, err := svc.Create(context.Background(), owner(), input)

	var verr validator.ValidationErrors
	assert.ErrorAs(t, err, &verr)
}

func TestCreate_BuildsPosting(t *testing.T) {
	svc := newTestService(time.Millisecond)
	user := owner()

	posting, err := svc.Create(context.Background(), user, validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, posting.ID)
	assert.Equal(t, "Corner Mart", posting.StoreName)
	assert.Contains(t, posting.Responsibilities, "**Cashier - Corner Mart**")
	assert.Contains(t, posting.Responsibilities, "Operate register, restock shelves")
	assert.Equal(t, "Retail sales customer service", posting.Requirements)
	assert.Equal(t, "Join our team as a Cashier at Corner Mart", posting.Summary)

	listed := svc.ListByOwner(user)
	require.Len(t, listed, 1)
	assert.Equal(t, posting.ID, listed[0].ID)
}

func TestCreate_DefaultsForOptionalFields(t *testing.T) {
	svc := newTestService(time.Millisecond)
	input := domain.CreateJobPostingInput{
		StoreName: "Corner Mart",
		Location:  "Downtown",
		Position:  "Cashier",
	}

	posting, err := svc.Create(context.Background(), owner(), input)

	require.NoError(t, err)
	assert.Contains(t, posting.Responsibilities, "Various duties as assigned")
	assert.Contains(t, posting.Responsibilities, "**Wage:** Competitive")
	assert.Equal(t, "Relevant experience preferred", posting.Requirements)
}

func TestCreate_RejectsSecondWhilePending(t *testing.T) {
	svc := newTestService(200 * time.Millisecond)
	user := owner()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Create(context.Background(), user, validInput())
		assert.NoError(t, err)
	}()

	// Give the first call time to enter its generation wait.
	time.Sleep(50 * time.Millisecond)
	_, err := svc.Create(context.Background(), user, validInput())
	assert.ErrorIs(t, err, jobpost.ErrGenerationInFlight)

	wg.Wait()

	// The guard lifts once the first generation finishes.
	_, err = svc.Create(context.Background(), user, validInput())
	assert.NoError(t, err)
	assert.Len(t, svc.ListByOwner(user), 2)
}

func TestCreate_CancelledContext(t *testing.T) {
	svc := newTestService(time.Minute)
	user := owner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, user, validInput())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, svc.ListByOwner(user))

	// A cancelled attempt must release the in-flight guard.
	delayed := newTestService(time.Millisecond)
	ctx2, cancel2 := context.WithCancel(context.Background())
	cancel2()
	_, _ = delayed.Create(ctx2, user, validInput())
	_, err = delayed.Create(context.Background(), user, validInput())
	assert.NoError(t, err)
}

func TestRemoveLast(t *testing.T) {
	svc := newTestService(time.Millisecond)
	user := owner()

	_, err := svc.RemoveLast(user)
	assert.ErrorIs(t, err, jobpost.ErrNoPostings)

	first, err := svc.Create(context.Background(), user, validInput())
	require.NoError(t, err)
	second := validInput()
	second.Position = "Stock Clerk"
	latest, err := svc.Create(context.Background(), user, second)
	require.NoError(t, err)

	removed, err := svc.RemoveLast(user)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, removed.ID)

	remaining := svc.ListByOwner(user)
	require.Len(t, remaining, 1)
	assert.Equal(t, first.ID, remaining[0].ID)
}

func TestRemoveLast_StoreOwnerOnly(t *testing.T) {
	svc := newTestService(time.Millisecond)
	seeker := &domain.UserData{Email: "s@example.com", Role: domain.RoleJobSeeker}

	_, err := svc.RemoveLast(seeker)

	assert.ErrorIs(t, err, jobpost.ErrStoreOwnerOnly)
}

func TestListByOwner_ScopedToCaller(t *testing.T) {
	svc := newTestService(time.Millisecond)
	first := owner()
	other := &domain.UserData{Email: "other@example.com", Role: domain.RoleStoreOwner}

	_, err := svc.Create(context.Background(), first, validInput())
	require.NoError(t, err)

	assert.Len(t, svc.ListByOwner(first), 1)
	assert.Empty(t, svc.ListByOwner(other))
}

func TestMatchScore(t *testing.T) {
	svc := newTestService(time.Millisecond)
	user := owner()

	posting, err := svc.Create(context.Background(), user, validInput())
	require.NoError(t, err)

	// Priya Sharma's fixture profile covers every requirement term.
	result, err := svc.MatchScore(posting.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, 100, result.MatchScore)
	assert.Equal(t, "Excellent", result.Compatibility)
	assert.Equal(t, 4, result.MatchedTerms)

	_, err = svc.MatchScore("nope", "1")
	assert.ErrorIs(t, err, jobpost.ErrPostingNotFound)

	_, err = svc.MatchScore(posting.ID, "nope")
	assert.ErrorIs(t, err, jobpost.ErrCandidateNotFound)
}

func TestCandidates(t *testing.T) {
	svc := newTestService(time.Millisecond)

	candidates := svc.Candidates()

	require.Len(t, candidates, 2)
	assert.Equal(t, "Priya Sharma", candidates[0].Name)
	assert.Equal(t, "Rahul Patel", candidates[1].Name)
}
