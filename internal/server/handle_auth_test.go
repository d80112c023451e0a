package server

import (
	"net/http"
	"testing"
)

func TestRegisterAndMe(t *testing.T) {
	r := newTestRouter(t)

	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	var me UserSummary
	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookies, "", &me)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	if me.Email != "a@x.com" || me.Name != "A" {
		t.Errorf("me = %+v, want a@x.com / A", me)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	registerUser(t, r, "a@x.com", "secret1", "A")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		RegisterRequest{Email: "a@x.com", Password: "secret2", Name: "B"}, nil, "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", w.Code)
	}

	// The first user's stored password must be untouched.
	var user UserSummary
	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "a@x.com", Password: "secret1"}, nil, "", &user)
	if w.Code != http.StatusOK {
		t.Fatalf("login with original password: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if user.Name != "A" {
		t.Errorf("login name = %q, want A", user.Name)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "a@x.com", Password: "secret2"}, nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login with rejected password: expected 401, got %d", w.Code)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := newTestRouter(t)

	registerUser(t, r, "a@x.com", "secret1", "A")

	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "a@x.com", Password: "wrongpass"}, nil, "", nil)
	noUser := doJSON(t, r, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: "nouser@x.com", Password: "anything"}, nil, "", nil)

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Errorf("login failure bodies differ: %q vs %q",
			wrongPass.Body.String(), noUser.Body.String())
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		RegisterRequest{Email: "", Password: "x", Name: "A"}, nil, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty email: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/register",
		RegisterRequest{Email: "a@x.com", Password: "x", Name: "   "}, nil, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", w.Code)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	r := newTestRouter(t)

	cookies := registerUser(t, r, "a@x.com", "secret1", "A")

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, cookies, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookies, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", w.Code)
	}
}
