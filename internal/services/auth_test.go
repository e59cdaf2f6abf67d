package services

import (
	"testing"
)

// Token generation and validation never touch the database, so a nil handle
// is fine here.

func TestAuthService_TokenRoundTrip(t *testing.T) {
	s := NewAuthService(nil, "test-secret")

	token, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	accountID, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if accountID != 42 {
		t.Errorf("expected account id 42, got %d", accountID)
	}
}

func TestAuthService_ValidateRejectsGarbage(t *testing.T) {
	s := NewAuthService(nil, "test-secret")

	if _, err := s.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestAuthService_ValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-one")
	verifier := NewAuthService(nil, "secret-two")

	token, err := issuer.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}
