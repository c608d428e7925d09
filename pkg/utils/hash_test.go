package utils

import "testing"

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct hashes for the same input, got identical records")
	}
	if !CheckPasswordHash("Secret123", first) || !CheckPasswordHash("Secret123", second) {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPasswordHash("NotTheOne1", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestCheckPasswordHash_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"", "not-a-bcrypt-record", "$2a$broken"} {
		if CheckPasswordHash("Secret123", hash) {
			t.Fatalf("malformed stored hash %q must fail closed", hash)
		}
	}
}
