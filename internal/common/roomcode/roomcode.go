package roomcode

import (
	"crypto/rand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/quickmadu/internal/common/roomcode Generator

// Generator produces shareable room codes
type Generator interface {
	NewCode() string
}

const (
	// CodeLength is the number of characters in a room code
	CodeLength = 6

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DefaultGenerator implements Generator using crypto/rand with rejection
// sampling to keep the distribution uniform over the alphabet
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a fresh uppercase alphanumeric room code
func (g *DefaultGenerator) NewCode() string {
	const max = byte(255 - (256 % len(codeAlphabet)))

	out := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}

		for _, b := range buf {
			if b <= max {
				out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
				if len(out) == CodeLength {
					return string(out)
				}
			}
		}
	}
}
