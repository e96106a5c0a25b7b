package service_test

import (
	"strings"
	"testing"

	"github.com/NattanSilva/curd-user-and-admin/internal/service"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// Cost 4 for fast tests.
	hasher := service.NewPasswordHasher(4)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !hasher.Verify("password123", hash) {
		t.Fatal("expected Verify to accept the original password")
	}
	if hasher.Verify("wrong", hash) {
		t.Fatal("expected Verify to reject a wrong password")
	}
}

func TestPasswordHasher_Hash_Salted(t *testing.T) {
	hasher := service.NewPasswordHasher(4)

	h1, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected random salts to yield distinct hashes")
	}
}

func TestPasswordHasher_Verify_MalformedHash(t *testing.T) {
	hasher := service.NewPasswordHasher(4)

	// Same outcome as a wrong password, nothing to enumerate on.
	if hasher.Verify("password123", "not-a-bcrypt-hash") {
		t.Fatal("expected Verify to reject a malformed hash")
	}
	if hasher.Verify("password123", "") {
		t.Fatal("expected Verify to reject an empty hash")
	}
}

func TestPasswordHasher_Hash_TooLong(t *testing.T) {
	hasher := service.NewPasswordHasher(4)

	// bcrypt rejects inputs over 72 bytes.
	_, err := hasher.Hash(strings.Repeat("x", 100))
	if err == nil {
		t.Fatal("expected an error for an over-long password")
	}
}
