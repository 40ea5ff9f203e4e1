// Package navigation owns the screen state machine: which screen a
// client is showing and the payload slots its screens read from
// (role, session, selected store, search location, filters,
// notifications). All transitions go through a Controller.
package navigation

import (
	"context"
	"errors"
	"sync"
	"time"

	"fl-jobs/internal/domain"
)

var (
	ErrRoleNotSelected = errors.New("no role selected")
	ErrSessionRequired = errors.New("screen requires a logged-in session")
	ErrStoreOwnerOnly  = errors.New("screen is available to store owners only")
)

// SessionStore is the slice of the session repository the controller
// needs to keep the persisted UserData record in sync with its state.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, user *domain.UserData, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// State is a point-in-time copy of a controller, safe to hand to
// renderers and encoders.
type State struct {
	Screen         domain.Screen         `json:"screen"`
	SelectedRole   domain.UserRole       `json:"selected_role,omitempty"`
	User           *domain.UserData      `json:"user,omitempty"`
	SelectedStore  *domain.Listing       `json:"selected_store,omitempty"`
	SearchLocation string                `json:"search_location,omitempty"`
	Filters        domain.FilterOptions  `json:"filters"`
	Notifications  []domain.Notification `json:"notifications"`
	UnreadCount    int                   `json:"unread_count"`
}

// Controller is the single source of truth for one client's screen
// and side-channel slots. Methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	sessionID string
	store     SessionStore
	ttl       time.Duration

	screen         domain.Screen
	selectedRole   domain.UserRole
	user           *domain.UserData
	selectedStore  *domain.Listing
	searchLocation string
	filters        domain.FilterOptions
	notifications  []domain.Notification
}

// NewController starts a fresh client at role selection with the
// all-permissive filter and the seed inbox.
func NewController(sessionID string, store SessionStore, ttl time.Duration, inbox []domain.Notification) *Controller {
	return &Controller{
		sessionID:     sessionID,
		store:         store,
		ttl:           ttl,
		screen:        domain.ScreenRoleSelection,
		filters:       domain.DefaultFilters(),
		notifications: inbox,
	}
}

// RestoredController starts a client whose session record survived a
// restart: already logged in, initial screen home.
func RestoredController(sessionID string, store SessionStore, ttl time.Duration, user *domain.UserData, inbox []domain.Notification) *Controller {
	c := NewController(sessionID, store, ttl, inbox)
	c.selectedRole = user.Role
	c.user = user
	c.screen = domain.ScreenHome
	return c
}

// SelectRole records the chosen role and moves to the login screen.
func (c *Controller) SelectRole(role domain.UserRole) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedRole = role
	c.screen = domain.ScreenLogin
}

// Login builds the session record from the verified login form and
// the previously selected role, persists it, and moves home. Without
// a selected role it fails and never produces a session.
func (c *Controller) Login(ctx context.Context, name, email, phone string) (*domain.UserData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selectedRole == "" {
		return nil, ErrRoleNotSelected
	}

	user := &domain.UserData{
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  c.selectedRole,
	}
	if err := c.store.Save(ctx, c.sessionID, user, c.ttl); err != nil {
		return nil, err
	}

	c.user = user
	c.screen = domain.ScreenHome
	return user, nil
}

// Logout removes the persisted record, clears the session slots and
// returns to role selection.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, c.sessionID); err != nil {
		return err
	}
	c.user = nil
	c.selectedRole = ""
	c.selectedStore = nil
	c.screen = domain.ScreenRoleSelection
	return nil
}

// Navigate transitions to the requested screen. Session-gated
// screens are refused without a logged-in user, and upload is
// refused for job seekers; the view layer never has to guard against
// missing prerequisites.
func (c *Controller) Navigate(screen domain.Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if screen.RequiresSession() && c.user == nil {
		return ErrSessionRequired
	}
	if screen == domain.ScreenUpload && c.user.Role != domain.RoleStoreOwner {
		return ErrStoreOwnerOnly
	}
	c.screen = screen
	return nil
}

// SelectStore stores the tapped listing and opens its detail screen.
func (c *Controller) SelectStore(listing domain.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return ErrSessionRequired
	}
	c.selectedStore = &listing
	c.screen = domain.ScreenStoreDetail
	return nil
}

// SearchLocation records the chosen destination and opens the
// location-results screen.
func (c *Controller) SearchLocation(location string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchLocation = location
	c.screen = domain.ScreenLocationResults
}

// ApplyFilters replaces the filter set wholesale. The current screen
// does not change; listing screens re-run the pipeline on render.
func (c *Controller) ApplyFilters(filters domain.FilterOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = filters
}

// MarkNotificationRead flips the matching entry to read. Unknown ids
// are a no-op; marking twice equals marking once.
func (c *Controller) MarkNotificationRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return
		}
	}
}

// ClearAllNotifications empties the inbox. Irreversible within the
// session: nothing re-seeds it.
func (c *Controller) ClearAllNotifications() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = []domain.Notification{}
}

// UpdateProfile applies the editable fields to the session record
// and re-persists it. Role is untouchable here.
func (c *Controller) UpdateProfile(ctx context.Context, input domain.UpdateProfileInput) (*domain.UserData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil, ErrSessionRequired
	}

	updated := *c.user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.Phone != nil {
		updated.Phone = *input.Phone
	}
	if err := c.store.Save(ctx, c.sessionID, &updated, c.ttl); err != nil {
		return nil, err
	}
	c.user = &updated
	return &updated, nil
}

// User returns the current session record, or nil before login.
func (c *Controller) User() *domain.UserData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Filters returns the active filter set consulted by listing screens.
func (c *Controller) Filters() domain.FilterOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Screen returns the currently active screen.
func (c *Controller) Screen() domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// SearchedLocation returns the destination the results screen shows.
func (c *Controller) SearchedLocation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchLocation
}

// Snapshot copies the full state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	notifs := make([]domain.Notification, len(c.notifications))
	copy(notifs, c.notifications)
	unread := 0
	for _, n := range notifs {
		if !n.Read {
			unread++
		}
	}

	s := State{
		Screen:         c.screen,
		SelectedRole:   c.selectedRole,
		SearchLocation: c.searchLocation,
		Filters:        c.filters,
		Notifications:  notifs,
		UnreadCount:    unread,
	}
	if c.user != nil {
		u := *c.user
		s.User = &u
	}
	if c.selectedStore != nil {
		l := *c.selectedStore
		s.SelectedStore = &l
	}
	return s
}
