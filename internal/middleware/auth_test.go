package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	raw := signedToken(t, Claims{
		UserID:    7,
		Email:     "user@gimnasio.com",
		IsStaff:   true,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		},
	}, testSecret)

	claims, err := ParseToken(raw, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "user@gimnasio.com" {
		t.Errorf("claims not preserved: %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type: got %q", claims.TokenType)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	raw := signedToken(t, Claims{
		UserID:    7,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, testSecret)

	if _, err := ParseToken(raw, testSecret); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	raw := signedToken(t, Claims{UserID: 7, TokenType: "access"}, "other-secret")

	if _, err := ParseToken(raw, testSecret); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
