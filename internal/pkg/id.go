package pkg

import "github.com/google/uuid"

// GenerateGameID - short identifier for a game session, long enough for a
// shareable URL without being a full UUID.
func GenerateGameID() string {
	return uuid.NewString()[:8]
}
