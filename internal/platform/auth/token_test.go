package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:   []byte("test-secret-key-for-unit-tests-only"),
		Issuer:   "smartdoc",
		TokenTTL: 30 * time.Minute,
	}
}

func TestIssueAndParseToken(t *testing.T) {
	cfg := testJWTConfig()

	signed, err := IssueToken(cfg, "doctor-123", "drsmith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(cfg, signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "doctor-123" {
		t.Errorf("expected subject doctor-123, got %s", claims.Subject)
	}
	if claims.Username != "drsmith" {
		t.Errorf("expected username drsmith, got %s", claims.Username)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("expected token type access, got %s", claims.TokenType)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	signed, _ := IssueToken(cfg, "doctor-123", "drsmith")

	other := cfg
	other.Secret = []byte("a-completely-different-secret-key")
	if _, err := ParseToken(other, signed); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenTTL = -time.Minute

	signed, _ := IssueToken(cfg, "doctor-123", "drsmith")
	if _, err := ParseToken(cfg, signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseToken_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	signed, _ := IssueToken(cfg, "doctor-123", "drsmith")

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseToken(other, signed); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestParseToken_RejectsNonAccessType(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "doctor-123",
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Username:  "drsmith",
		TokenType: "refresh",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseToken(cfg, signed); err == nil {
		t.Fatal("expected error for non-access token type")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpassw0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cretpassw0rd" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "s3cretpassw0rd") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hash, "wrongpassword") {
		t.Error("expected wrong password to fail")
	}
}
