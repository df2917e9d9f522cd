package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomWalletNumber(t *testing.T) {
	seededRand := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		number := RandomWalletNumber(seededRand)
		assert.Len(t, number, 10)
		for _, r := range number {
			assert.True(t, r >= '0' && r <= '9', "wallet number must be digits only, got %q", number)
		}
	}
}
