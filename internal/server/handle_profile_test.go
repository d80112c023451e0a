package server

import (
	"net/http"
	"testing"

	"github.com/cinepass/cinebook/internal/cinebook"
)

func TestGetProfile(t *testing.T) {
	r := newTestRouter(t)
	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	var profile cinebook.UserProfile
	w := doJSON(t, r, http.MethodGet, "/api/profile/", nil, cookies, "", &profile)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if profile.Email != "a@x.com" || profile.Name != "A" {
		t.Errorf("profile = %q/%q, want a@x.com/A", profile.Email, profile.Name)
	}
	if profile.LoyaltyPoints != 0 {
		t.Errorf("new user loyalty points = %d, want 0", profile.LoyaltyPoints)
	}
	if len(profile.BookingHistory) != 0 {
		t.Errorf("new user booking history = %d entries, want 0", len(profile.BookingHistory))
	}
}

func TestGetProfileRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile/", nil, nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	r := newTestRouter(t)
	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	phone := "+91 98765 43210"
	city := "mumbai"
	var profile cinebook.UserProfile
	w := doJSON(t, r, http.MethodPut, "/api/profile/",
		ProfileUpdate{Phone: &phone, PreferredCity: &city}, cookies, "", &profile)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if profile.Phone != phone {
		t.Errorf("phone = %q, want %q", profile.Phone, phone)
	}
	if profile.PreferredCity != city {
		t.Errorf("preferredCity = %q, want %q", profile.PreferredCity, city)
	}
	if profile.Name != "A" {
		t.Errorf("name = %q, must be untouched", profile.Name)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	r := newTestRouter(t)
	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	empty := ""
	w := doJSON(t, r, http.MethodPut, "/api/profile/",
		ProfileUpdate{Name: &empty}, cookies, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// Stored profile must be unchanged.
	var profile cinebook.UserProfile
	doJSON(t, r, http.MethodGet, "/api/profile/", nil, cookies, "", &profile)
	if profile.Name != "A" {
		t.Errorf("name = %q after rejected update, want A", profile.Name)
	}
}

func TestUpdateProfileRejectsMalformedPhone(t *testing.T) {
	r := newTestRouter(t)
	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	bad := "not-a-phone!"
	w := doJSON(t, r, http.MethodPut, "/api/profile/",
		ProfileUpdate{Phone: &bad}, cookies, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var profile cinebook.UserProfile
	doJSON(t, r, http.MethodGet, "/api/profile/", nil, cookies, "", &profile)
	if profile.Phone != "" {
		t.Errorf("phone = %q after rejected update, want empty", profile.Phone)
	}
}
