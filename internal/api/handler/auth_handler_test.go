package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitstack/gym-api/internal/api"
	"github.com/fitstack/gym-api/internal/api/handler"
	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	loginFn   func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	refreshFn func(ctx context.Context, refreshToken string) (*ports.AuthResult, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newAuthTestServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(stub)
	e.POST("/api/auth/signup", h.SignUp)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/refresh", h.Refresh)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleResult() *ports.AuthResult {
	return &ports.AuthResult{
		UserID: "user-1",
		Email:  "alice@example.com",
		TokenPair: domain.TokenPair{
			AccessToken:      "access-jwt",
			RefreshToken:     "refresh-opaque",
			RefreshExpiresAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "supersecret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return sampleResult(), nil
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/signup", `{"email":"alice@example.com","password":"supersecret"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "user-1" || resp["access_token"] != "access-jwt" || resp["refresh_token"] != "refresh-opaque" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_SignUp_EmailExists(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailExists
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/signup", `{"email":"alice@example.com","password":"supersecret"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e := newAuthTestServer(stub)

	cases := map[string]string{
		"not json":       `not-json`,
		"missing email":  `{"password":"supersecret"}`,
		"bad email":      `{"email":"nope","password":"supersecret"}`,
		"short password": `{"email":"alice@example.com","password":"short"}`,
	}
	for name, body := range cases {
		rec := postJSON(e, "/api/auth/signup", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			result := sampleResult()
			result.Entitlement = &domain.Entitlement{SubscriptionTier: "premium", AIFeaturesIncluded: true}
			return result, nil
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"supersecret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	sub, ok := resp["subscription"].(map[string]any)
	if !ok || sub["subscription_tier"] != "premium" || sub["ai_features_included"] != true {
		t.Fatalf("unexpected subscription payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"bad-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "invalid credentials" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestAuthHandler_Login_Inactive(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrUserInactive
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"supersecret"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
			if refreshToken != "refresh-opaque" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return sampleResult(), nil
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/refresh", `{"refresh_token":"refresh-opaque"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/refresh", `{"refresh_token":"consumed"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e := newAuthTestServer(stub)

	rec := postJSON(e, "/api/auth/refresh", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
