package auth

import (
	"testing"
	"time"
)

func testManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret-key",
		Expiry: expiry,
		Issuer: "luct-reporting-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := testManager(time.Hour)

	token, err := manager.GenerateToken(42, "lecturer@luct.ac.rw", "lecturer")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "lecturer@luct.ac.rw" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "lecturer" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a JTI on generated tokens")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testManager(time.Hour).GenerateToken(1, "a@luct.ac.rw", "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewJWTManager(JWTConfig{Secret: "different-secret", Expiry: time.Hour})
	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	manager := testManager(-time.Minute)

	token, err := manager.GenerateToken(1, "a@luct.ac.rw", "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	if _, err := testManager(time.Hour).ValidateToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
