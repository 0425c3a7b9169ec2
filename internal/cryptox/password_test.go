package cryptox

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash_RoundTrip(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("Valid@123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if hash == "Valid@123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Check("Valid@123", hash) {
		t.Fatal("hash must verify against the original password")
	}
	if h.Check("Valid@124", hash) {
		t.Fatal("hash must not verify against a different password")
	}
}

func TestHash_NonDeterministic(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	first, err := h.Hash("Valid@123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("Valid@123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password must differ (fresh salt per call)")
	}
	if !h.Check("Valid@123", first) || !h.Check("Valid@123", second) {
		t.Fatal("both hashes must independently verify")
	}
}

func TestHash_SelfDescribing(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("Valid@123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	// algorithm and cost are embedded in the credential string
	if !strings.HasPrefix(hash, "$2a$04$") {
		t.Fatalf("unexpected credential format: %q", hash)
	}
}

func TestHash_InvalidCost(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MaxCost + 1}

	if _, err := h.Hash("Valid@123"); err == nil {
		t.Fatal("expected error for out-of-range cost")
	}
}

func TestHash_ZeroValueUsesDefaultCost(t *testing.T) {
	var h BcryptHasher
	if h.cost() != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, h.cost())
	}
}
