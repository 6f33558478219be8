package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var (
	inviteAdjectives = []string{"SUNNY", "HAPPY", "BRIGHT", "COZY", "WARM", "FRESH", "COOL", "SMART", "SWIFT", "CALM"}
	inviteNouns      = []string{"HOUSE", "HOME", "PLACE", "SPACE", "ROOM", "SPOT", "ZONE", "NEST", "HUB", "BASE"}
)

// GenerateInviteCode generates a human-readable invite code in the format
// ADJECTIVE-NOUN-0000, e.g. SUNNY-HOUSE-0421. Codes are stored upper-case and
// looked up case-insensitively by the caller.
func GenerateInviteCode() (string, error) {
	adjective, err := randomWord(inviteAdjectives)
	if err != nil {
		return "", err
	}
	noun, err := randomWord(inviteNouns)
	if err != nil {
		return "", err
	}
	suffix, err := randomInt(10000)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", adjective, noun, suffix), nil
}

func randomWord(words []string) (string, error) {
	i, err := randomInt(int64(len(words)))
	if err != nil {
		return "", err
	}
	return words[i], nil
}

func randomInt(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return n.Int64(), nil
}
