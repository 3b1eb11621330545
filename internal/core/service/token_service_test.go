package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// stubTokenRepo is an in-memory RefreshTokenRepository with the same
// conditional-revoke semantics as the SQL implementation.
type stubTokenRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.RefreshToken
	byHash map[string]string // token_hash → token_id
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{
		byID:   make(map[string]*domain.RefreshToken),
		byHash: make(map[string]string),
	}
}

func (r *stubTokenRepo) Create(_ context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	r.byID[clone.ID] = &clone
	r.byHash[clone.TokenHash] = clone.ID
	return nil
}

func (r *stubTokenRepo) FindByHash(_ context.Context, tokenHash string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byHash[tokenHash]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *stubTokenRepo) Revoke(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.byID[id]
	if !ok || token.IsRevoked {
		return 0, nil
	}
	token.IsRevoked = true
	return 1, nil
}

func (r *stubTokenRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token, ok := r.byID[id]; ok {
		delete(r.byHash, token.TokenHash)
		delete(r.byID, id)
	}
	return nil
}

func newTestTokenService(t *testing.T, repo *stubTokenRepo) *TokenService {
	t.Helper()
	svc, err := NewTokenService(repo, "test-secret", 15*time.Minute, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	return svc
}

func TestNewTokenService_Configuration(t *testing.T) {
	repo := newStubTokenRepo()

	if _, err := NewTokenService(repo, "", time.Minute, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenService(repo, "secret", 0, time.Hour); err == nil {
		t.Fatalf("expected error for zero access TTL")
	}
	if _, err := NewTokenService(repo, "secret", time.Minute, -time.Hour); err == nil {
		t.Fatalf("expected error for negative refresh TTL")
	}
}

func TestTokenService_AccessToken_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, newStubTokenRepo())

	limit := 12
	signed, err := svc.IssueAccessToken(domain.AccessClaims{
		UserID:   "user-1",
		Email:    "a@x.com",
		IsActive: true,
		Entitlement: &domain.Entitlement{
			SubscriptionTier:    "pro",
			AIFeaturesIncluded:  true,
			MaxWorkoutsPerMonth: &limit,
		},
	})
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	claims, err := svc.VerifyAccessToken(signed)
	if err != nil {
		t.Fatalf("VerifyAccessToken returned error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@x.com" || !claims.IsActive {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Entitlement == nil || claims.Entitlement.SubscriptionTier != "pro" {
		t.Fatalf("entitlement snapshot lost: %+v", claims.Entitlement)
	}
	if claims.Entitlement.MaxWorkoutsPerMonth == nil || *claims.Entitlement.MaxWorkoutsPerMonth != 12 {
		t.Fatalf("workout limit lost: %+v", claims.Entitlement)
	}
}

func TestTokenService_AccessToken_NoEntitlement(t *testing.T) {
	svc := newTestTokenService(t, newStubTokenRepo())

	signed, err := svc.IssueAccessToken(domain.AccessClaims{UserID: "user-1", Email: "a@x.com", IsActive: true})
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}
	claims, err := svc.VerifyAccessToken(signed)
	if err != nil {
		t.Fatalf("VerifyAccessToken returned error: %v", err)
	}
	if claims.Entitlement != nil {
		t.Fatalf("expected no entitlement, got %+v", claims.Entitlement)
	}
}

func TestTokenService_AccessToken_Expired(t *testing.T) {
	svc := newTestTokenService(t, newStubTokenRepo())

	past := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return past }
	signed, err := svc.IssueAccessToken(domain.AccessClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.VerifyAccessToken(signed); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_AccessToken_BadSignature(t *testing.T) {
	svc := newTestTokenService(t, newStubTokenRepo())
	other := newTestTokenService(t, newStubTokenRepo())
	other.secret = []byte("different-secret")

	signed, err := other.IssueAccessToken(domain.AccessClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}
	if _, err := svc.VerifyAccessToken(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.VerifyAccessToken("not-a-jwt"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestTokenService_RefreshToken_StoresHashOnly(t *testing.T) {
	repo := newStubTokenRepo()
	svc := newTestTokenService(t, repo)

	token, raw, err := svc.IssueRefreshToken(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	if raw == "" || token.TokenHash == raw {
		t.Fatalf("raw value leaked into the stored record")
	}
	if token.TokenHash != HashRefreshToken(raw) {
		t.Fatalf("stored hash is not the commitment of the raw value")
	}

	found, err := svc.VerifyRefreshToken(context.Background(), raw)
	if err != nil {
		t.Fatalf("VerifyRefreshToken returned error: %v", err)
	}
	if found.ID != token.ID || found.UserID != "user-1" {
		t.Fatalf("unexpected token record: %+v", found)
	}
}

func TestTokenService_RefreshToken_UnknownAndRevoked(t *testing.T) {
	repo := newStubTokenRepo()
	svc := newTestTokenService(t, repo)

	if _, err := svc.VerifyRefreshToken(context.Background(), "no-such-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unknown value, got %v", err)
	}

	token, raw, err := svc.IssueRefreshToken(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	if err := svc.RotateRefreshToken(context.Background(), token.ID); err != nil {
		t.Fatalf("RotateRefreshToken returned error: %v", err)
	}
	if _, err := svc.VerifyRefreshToken(context.Background(), raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for revoked token, got %v", err)
	}
}

func TestTokenService_RefreshToken_ExpiredEvenIfRevoked(t *testing.T) {
	repo := newStubTokenRepo()
	svc := newTestTokenService(t, repo)

	past := time.Now().Add(-60 * 24 * time.Hour)
	svc.now = func() time.Time { return past }
	token, raw, err := svc.IssueRefreshToken(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	// Revoked state must not mask expiry.
	if _, err := repo.Revoke(context.Background(), token.ID); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.VerifyRefreshToken(context.Background(), raw); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	// Eager cleanup removed the row.
	if _, err := repo.FindByHash(context.Background(), HashRefreshToken(raw)); err != domain.ErrInvalidToken {
		t.Fatalf("expected expired token to be deleted, got %v", err)
	}
}

func TestTokenService_Rotate_SingleUse(t *testing.T) {
	repo := newStubTokenRepo()
	svc := newTestTokenService(t, repo)

	token, _, err := svc.IssueRefreshToken(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.RotateRefreshToken(context.Background(), token.ID)
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch err {
		case nil:
			wins++
		case domain.ErrInvalidToken:
			losses++
		default:
			t.Fatalf("unexpected rotate error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("expected exactly one winner, got %d wins / %d losses", wins, losses)
	}
}
