package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateSecureToken(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := GenerateSecureToken()

		if len(tok) != 64 {
			t.Fatalf("expected 64 hex chars (256 bits), got %d", len(tok))
		}
		if _, err := hex.DecodeString(tok); err != nil {
			t.Fatalf("token is not valid hex: %v", err)
		}
		if seen[tok] {
			t.Fatalf("token collision after %d draws", i)
		}
		seen[tok] = true
	}
}

func TestGenerateAvatarURL(t *testing.T) {
	t.Parallel()

	url := GenerateAvatarURL("ada")
	if url != "https://api.dicebear.com/9.x/avataaars/svg?seed=ada" {
		t.Fatalf("unexpected avatar URL: %s", url)
	}
}
