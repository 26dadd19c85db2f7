package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces bcrypt encoding", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}

		if !strings.HasPrefix(hash, "$2a$10$") {
			t.Errorf("expected bcrypt cost-10 prefix, got %q", hash)
		}
	})

	t.Run("generates unique salts", func(t *testing.T) {
		hash1, _ := HashPassword("samePassword")
		hash2, _ := HashPassword("samePassword")

		if hash1 == hash2 {
			t.Error("same password should produce different hashes")
		}
	})

	t.Run("rejects empty password", func(t *testing.T) {
		if _, err := HashPassword(""); err == nil {
			t.Error("expected error for empty password")
		}
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "p1", hash, true},
		{"wrong password", "p2", hash, false},
		{"near-miss password", "p1 ", hash, false},
		{"empty password", "", hash, false},
		{"garbage hash", "p1", "not-a-hash", false},
		{"empty hash", "p1", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ComparePassword(test.password, test.hash); got != test.want {
				t.Errorf("ComparePassword() = %v, want %v", got, test.want)
			}
		})
	}
}
