package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func signToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runGuard(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, h(c)
}

func TestBearerGuard_ValidToken(t *testing.T) {
	key := []byte("test-signing-key")
	token := signToken(t, key, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, err := runGuard(t, BearerGuard(GuardConfig{SigningKey: key}), "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBearerGuard_MissingHeader(t *testing.T) {
	_, err := runGuard(t, BearerGuard(GuardConfig{SigningKey: []byte("k")}), "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 HTTPError, got %v", err)
	}
}

func TestBearerGuard_WrongKey(t *testing.T) {
	token := signToken(t, []byte("other-key"), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := runGuard(t, BearerGuard(GuardConfig{SigningKey: []byte("right-key")}), "Bearer "+token)
	if err == nil {
		t.Error("expected error for token signed with wrong key")
	}
}

func TestBearerGuard_ExpiredToken(t *testing.T) {
	key := []byte("test-signing-key")
	token := signToken(t, key, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := runGuard(t, BearerGuard(GuardConfig{SigningKey: key}), "Bearer "+token)
	if err == nil {
		t.Error("expected error for expired token")
	}
}

func TestCachedTokenSource_ReusesToken(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	src := NewCachedTokenSource(ClientCredentials{TokenURL: srv.URL, ClientID: "id", ClientSecret: "secret"}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		tok, err := src.Token(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok != "abc" {
			t.Errorf("expected token abc, got %s", tok)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected a single token fetch, got %d", n)
	}
}

func TestCachedTokenSource_EmptyTokenFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":""}`))
	}))
	defer srv.Close()

	src := NewCachedTokenSource(ClientCredentials{TokenURL: srv.URL}, zerolog.Nop())
	if _, err := src.Token(context.Background()); err == nil {
		t.Error("expected error for empty access_token")
	}
}

func TestStaticTokenSource(t *testing.T) {
	tok, err := StaticTokenSource("fixed").Token(context.Background())
	if err != nil || tok != "fixed" {
		t.Errorf("expected fixed token, got %q, %v", tok, err)
	}
}
