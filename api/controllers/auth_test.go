package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aliamzad3333/ecommerce-web-sub000/api/middleware"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/auth"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/users"
	pkgerrors "github.com/aliamzad3333/ecommerce-web-sub000/pkg/errors"
)

type stubAuthService struct {
	loginResult    *auth.LoginResponse
	loginErr       error
	registerResult *auth.LoginResponse
	registerErr    error
	refreshResult  *auth.RefreshResponse
	refreshErr     error
	logoutErr      error
	meResult       *users.UserDTO
	meErr          error

	lastLogin auth.LoginRequest
	lastMeID  uuid.UUID
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	s.lastLogin = req
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Refresh(_ context.Context, _ string, _ auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return s.refreshResult, s.refreshErr
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

func (s *stubAuthService) Me(_ context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	s.lastMeID = userID
	return s.meResult, s.meErr
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{loginResult: &auth.LoginResponse{AccessToken: "at", RefreshToken: "rt"}}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"shopper@example.com","password":"secret123"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastLogin.Email != "shopper@example.com" {
		t.Fatalf("unexpected email %q", svc.lastLogin.Email)
	}

	var payload struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data.AccessToken != "at" {
		t.Fatalf("unexpected token %q", payload.Data.AccessToken)
	}
}

func TestAuthLoginRejectsMalformedBody(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginMapsUnauthorized(t *testing.T) {
	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"shopper@example.com","password":"wrong-pass"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRegisterCreated(t *testing.T) {
	svc := &stubAuthService{registerResult: &auth.LoginResponse{AccessToken: "at"}}
	handler := AuthRegister(svc, nil)

	body := `{"full_name":"Test Shopper","email":"new@example.com","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthRegister(svc, nil)

	body := `{"full_name":"Test Shopper","email":"new@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthMeRequiresContextUser(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthMe(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthMeReturnsProfile(t *testing.T) {
	userID := uuid.New()
	svc := &stubAuthService{meResult: &users.UserDTO{ID: userID, Email: "shopper@example.com"}}
	handler := AuthMe(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastMeID != userID {
		t.Fatalf("expected lookup for %s got %s", userID, svc.lastMeID)
	}
}
