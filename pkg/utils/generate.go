package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OPAQUE TOKENS ====================

// GenerateSecureToken returns a 256-bit hex token for email verification
// and password reset links. Panics only if the OS entropy source is broken.
func GenerateSecureToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}

// ==================== AVATAR ====================

// GenerateAvatarURL builds a deterministic placeholder avatar for new accounts.
func GenerateAvatarURL(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/9.x/avataaars/svg?seed=%s", seed)
}
