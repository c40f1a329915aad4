package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// PIILevel controls how player supplied text appears in logs and traces.
type PIILevel string

const (
	// PIILevelNone redacts player names entirely
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces names with a salted hash so one player's attempts stay correlatable
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull logs names verbatim
	PIILevelFull PIILevel = "full"
)

const anonymousPlayer = "anonymous"

// Sanitizer redacts player names before they reach telemetry.
type Sanitizer struct {
	level PIILevel
	salt  string

	emailPattern *regexp.Regexp
}

// NewSanitizer creates a sanitizer. The salt keeps hashes stable per deployment.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:        ParseLevel(string(level)),
		salt:         salt,
		emailPattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	}
}

// ParseLevel maps a config value to a level. Unknown values hash.
func ParseLevel(raw string) PIILevel {
	switch PIILevel(strings.ToLower(strings.TrimSpace(raw))) {
	case PIILevelNone:
		return PIILevelNone
	case PIILevelFull:
		return PIILevelFull
	default:
		return PIILevelHashed
	}
}

// PlayerName returns the loggable form of an optional player name.
func (s *Sanitizer) PlayerName(name *string) string {
	if name == nil || *name == "" {
		return anonymousPlayer
	}

	switch s.level {
	case PIILevelNone:
		return "[REDACTED]"
	case PIILevelFull:
		// players sometimes type an email address as their name
		return s.emailPattern.ReplaceAllString(*name, "[EMAIL]")
	default:
		return "player-" + s.hash(*name)
	}
}

func (s *Sanitizer) hash(data string) string {
	h := sha256.New()
	h.Write([]byte(data + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:8]
}
