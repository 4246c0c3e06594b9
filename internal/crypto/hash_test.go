package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("HashPassword() hash = %q, want bcrypt cost-10 prefix", hash)
	}
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	if err == nil {
		t.Error("HashPassword() expected error for input over 72 bytes")
	}
}

func TestCheckPasswordCorrect(t *testing.T) {
	password := "Sup3r-secret"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword() returned false for correct password")
	}
}

func TestCheckPasswordWrong(t *testing.T) {
	hash, err := HashPassword("Correct-h0rse")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if CheckPassword("Wrong-h0rse", hash) {
		t.Error("CheckPassword() returned true for wrong password")
	}
}

func TestCheckPasswordSingleCharMutation(t *testing.T) {
	password := "Passw0rd!"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		if CheckPassword(string(mutated), hash) {
			t.Errorf("CheckPassword() returned true for mutation at index %d", i)
		}
	}
}

func TestHashPasswordProducesDifferentHashes(t *testing.T) {
	password := "same-Passw0rd"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password (salt should differ)")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// A corrupt stored hash must read as a mismatch, not a fault.
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$10$short"} {
		if CheckPassword("Passw0rd!", hash) {
			t.Errorf("CheckPassword() returned true for malformed hash %q", hash)
		}
	}
}
