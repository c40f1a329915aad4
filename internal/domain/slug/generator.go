package slug

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
)

const (
	// MinLength and MaxLength bound every accepted slug.
	MinLength = 3
	MaxLength = 50
)

// Pattern is the shape every game slug must match, generated or supplied by a client.
var Pattern = regexp.MustCompile(`^[a-zA-Z0-9-]{3,50}$`)

// Generator produces human-readable identifiers for shareable games.
type Generator interface {
	Generate() (string, error)
}

// VocabularyGenerator composes <adverb>-<verb>-<animal> slugs.
// It holds no state beyond its entropy source and never consults storage.
type VocabularyGenerator struct {
	reader io.Reader
}

// NewGenerator returns a generator backed by crypto/rand.
func NewGenerator() *VocabularyGenerator {
	return &VocabularyGenerator{reader: rand.Reader}
}

// Generate draws one word from each vocabulary uniformly at random.
func (g *VocabularyGenerator) Generate() (string, error) {
	parts := make([]string, 0, 3)
	for _, words := range [][]string{adverbs, verbs, animals} {
		word, err := g.pick(words)
		if err != nil {
			return "", err
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, "-"), nil
}

func (g *VocabularyGenerator) pick(words []string) (string, error) {
	idx, err := rand.Int(g.reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return words[idx.Int64()], nil
}

// Valid reports whether s is an acceptable game slug.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}
