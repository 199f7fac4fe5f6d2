package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateSessionKey_Success(t *testing.T) {
	token, err := GenerateSessionKey("test-issuer", "alice", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.OwnerID != "alice" {
		t.Errorf("expected owner 'alice', got %s", token.OwnerID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", claims.Subject)
	}
}

func TestGenerateSessionKey_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		owner    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty owner", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"negative duration", "iss", "alice", -time.Minute, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionKey(tt.issuer, tt.owner, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionKey_Success(t *testing.T) {
	generated, err := GenerateSessionKey("iss", "bob", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseSessionKey(generated.SignedString, "key", "iss")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.OwnerID != "bob" {
		t.Errorf("expected owner 'bob', got %s", parsed.OwnerID)
	}
	if parsed.String() != generated.SignedString {
		t.Error("expected parsed token to keep the signed string")
	}
}

func TestValidateAndParseSessionKey_InvalidKey(t *testing.T) {
	generated, _ := GenerateSessionKey("iss", "bob", time.Hour, "key")

	_, err := ValidateAndParseSessionKey(generated.SignedString, "other-key", "iss")

	if err == nil {
		t.Fatal("expected signature error, got nil")
	}
}

func TestValidateAndParseSessionKey_Expired(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseSessionKey(signed, "key", "iss")

	if err == nil {
		t.Fatal("expected expiry error, got nil")
	}
}

func TestValidateAndParseSessionKey_MissingExpiry(t *testing.T) {
	claims := &jwt.RegisteredClaims{Issuer: "iss", Subject: "bob"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseSessionKey(signed, "key", "iss")

	if err == nil {
		t.Fatal("expected error for key without exp, got nil")
	}
}

func TestValidateAndParseSessionKey_WrongIssuer(t *testing.T) {
	generated, _ := GenerateSessionKey("iss", "bob", time.Hour, "key")

	_, err := ValidateAndParseSessionKey(generated.SignedString, "key", "other-iss")

	if err == nil {
		t.Fatal("expected issuer error, got nil")
	}
}

func TestValidateAndParseSessionKey_EmptySubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseSessionKey(signed, "key", "iss")

	if err == nil {
		t.Fatal("expected error for empty subject, got nil")
	}
}

func TestValidateAndParseSessionKey_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ValidateAndParseSessionKey(raw, "key", "iss"); err == nil {
			t.Errorf("expected error for %q, got nil", raw)
		}
	}
}
