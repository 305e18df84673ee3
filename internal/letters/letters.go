package letters

import (
	"math/rand"
	"time"
)

// Alphabet is the set of letters a round can start with. Letters that are
// rare word-initially in Spanish (K, Ñ, W, X, Y) are left out.
const Alphabet = "ABCDEFGHIJLMNOPQRSTUVZ"

// Picker provides round letter selection
type Picker struct {
	random *rand.Rand
}

// Config for letter picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new letter picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Picker{
		random: random,
	}
}

// Pick returns a letter chosen uniformly at random from Alphabet
func (p *Picker) Pick() string {
	return string(Alphabet[p.random.Intn(len(Alphabet))])
}
