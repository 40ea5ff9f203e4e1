package domain_test

import (
	"testing"

	"fl-jobs/internal/domain"
)

func TestParseScreen_ValidValues(t *testing.T) {
	valid := []string{
		"role-selection", "login", "home", "upload", "location-input",
		"location-results", "store-detail", "profile", "settings",
		"filters", "notifications",
	}
	for _, s := range valid {
		got, err := domain.ParseScreen(s)
		if err != nil {
			t.Errorf("ParseScreen(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseScreen(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseScreen_InvalidValue(t *testing.T) {
	if _, err := domain.ParseScreen("dashboard"); err == nil {
		t.Error("ParseScreen(\"dashboard\") expected error, got nil")
	}
	if _, err := domain.ParseScreen(""); err == nil {
		t.Error("ParseScreen(\"\") expected error, got nil")
	}
}

func TestScreen_RequiresSession(t *testing.T) {
	gated := []domain.Screen{
		domain.ScreenHome, domain.ScreenUpload,
		domain.ScreenStoreDetail, domain.ScreenProfile,
	}
	for _, s := range gated {
		if !s.RequiresSession() {
			t.Errorf("%s should require a session", s)
		}
	}

	open := []domain.Screen{
		domain.ScreenRoleSelection, domain.ScreenLogin,
		domain.ScreenLocationInput, domain.ScreenLocationResults,
		domain.ScreenSettings, domain.ScreenFilters,
		domain.ScreenNotifications,
	}
	for _, s := range open {
		if s.RequiresSession() {
			t.Errorf("%s should not require a session", s)
		}
	}
}
