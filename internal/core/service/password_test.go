package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("StrongP@ssw0rd")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "StrongP@ssw0rd" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("StrongP@ssw0rd", digest) {
		t.Fatalf("Verify rejected matching password")
	}
	if h.Verify("wrong-password", digest) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestBcryptHasher_SaltVaries(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same input are identical")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("Verify accepted malformed digest")
	}
	if h.Verify("anything", "") {
		t.Fatalf("Verify accepted empty digest")
	}
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(9999)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
