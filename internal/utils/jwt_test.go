package utils

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	tok, err := NewAccessToken(secret, 7, "ann@example.com", 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if strings.Count(tok.Token, ".") != 2 {
		t.Fatalf("expected three dot-separated segments, got %q", tok.Token)
	}

	claims, err := ParseAccessToken(secret, tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ann@example.com" {
		t.Fatalf("claims mismatch: got id=%d email=%q", claims.UserID, claims.Email)
	}
	// exp should sit one hour after iat.
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", got)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret-one", 1, "a@b.com", 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = ParseAccessToken("secret-two", tok.Token)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 1, "a@b.com", -1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = ParseAccessToken("secret", tok.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := ParseAccessToken("secret", raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("ParseAccessToken(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestParseAccessToken_Truncated(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 1, "a@b.com", 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	truncated := tok.Token[:len(tok.Token)-1]
	if _, err := ParseAccessToken("secret", truncated); err == nil {
		t.Fatal("expected error for truncated token, got nil")
	}
}
