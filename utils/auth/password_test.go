package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "123456" {
		t.Fatal("hash should not equal the plaintext")
	}

	if err := VerifyPassword(hash, "123456"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); err != ErrPasswordMismatch {
		t.Errorf("err = %v, want ErrPasswordMismatch", err)
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("12345"); err != ErrPasswordTooShort {
		t.Errorf("err = %v, want ErrPasswordTooShort", err)
	}
}
