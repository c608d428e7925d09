package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testSnapshot() UserSnapshot {
	return UserSnapshot{
		ID:        "2b6a6c7e-6a66-4dfc-9d1a-6e3c3a3b1f00",
		FullName:  "Ada Lovelace",
		Email:     "ada@x.com",
		Avatar:    "https://example.com/ada.png",
		Role:      "user",
		Verified:  true,
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestMintAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	want := testSnapshot()

	tok, err := m.Mint(want)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if got.ID != want.ID || got.FullName != want.FullName || got.Email != want.Email ||
		got.Avatar != want.Avatar || got.Role != want.Role || got.Verified != want.Verified {
		t.Fatalf("snapshot mismatch: got %+v want %+v", got, want)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", time.Hour).Mint(testSnapshot())
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = NewManager("wrong-secret", time.Hour).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -1*time.Second)

	tok, err := m.Mint(testSnapshot())
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = m.Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := m.Verify(tok); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	secret := "shared-secret"
	m := NewManager(secret, time.Hour)

	// Signed with the right secret but the wrong algorithm
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		User: testSnapshot(),
	})
	tok, err := other.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := m.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}
