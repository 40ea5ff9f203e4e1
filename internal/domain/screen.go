// Package domain holds the FL JOBS data model.
//
// Screen navigation graph (every screen can also be re-entered from
// itself; back-navigation reuses the same edges in reverse):
//
//	role-selection ──► login ──► home ──► {upload, location-input,
//	                                       store-detail, profile,
//	                                       settings, filters,
//	                                       notifications}
//	location-input ──► location-results ──► store-detail
package domain

import "fmt"

// Screen identifies one of the fixed set of mutually exclusive
// top-level views. Exactly one is active per client at any time.
type Screen string

const (
	ScreenRoleSelection   Screen = "role-selection"
	ScreenLogin           Screen = "login"
	ScreenHome            Screen = "home"
	ScreenUpload          Screen = "upload"
	ScreenLocationInput   Screen = "location-input"
	ScreenLocationResults Screen = "location-results"
	ScreenStoreDetail     Screen = "store-detail"
	ScreenProfile         Screen = "profile"
	ScreenSettings        Screen = "settings"
	ScreenFilters         Screen = "filters"
	ScreenNotifications   Screen = "notifications"
)

// sessionGated lists the screens that render user data and therefore
// require a logged-in session.
var sessionGated = map[Screen]bool{
	ScreenHome:        true,
	ScreenUpload:      true,
	ScreenStoreDetail: true,
	ScreenProfile:     true,
}

// ParseScreen converts a raw string to a Screen, returning an error
// for unknown values.
func ParseScreen(s string) (Screen, error) {
	sc := Screen(s)
	switch sc {
	case ScreenRoleSelection, ScreenLogin, ScreenHome, ScreenUpload,
		ScreenLocationInput, ScreenLocationResults, ScreenStoreDetail,
		ScreenProfile, ScreenSettings, ScreenFilters, ScreenNotifications:
		return sc, nil
	}
	return "", fmt.Errorf("unknown screen %q", s)
}

// RequiresSession reports whether the screen needs a logged-in user
// to render.
func (s Screen) RequiresSession() bool {
	return sessionGated[s]
}
