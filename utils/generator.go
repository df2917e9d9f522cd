package utils

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/edutrackhq/edutrack/models"
)

const walletNumberLength = 10
const walletDigits = "0123456789"

// RandomWalletNumber produces a candidate wallet number. Uniqueness is the
// caller's problem; see GenerateUniqueWalletNumber.
func RandomWalletNumber(seededRand *rand.Rand) string {
	b := make([]byte, walletNumberLength)
	for i := range b {
		b[i] = walletDigits[seededRand.Intn(len(walletDigits))]
	}
	return string(b)
}

// GenerateUniqueWalletNumber keeps drawing candidates until one is free.
// Collisions are vanishingly rare at 10 digits, so the loop almost always
// runs once.
func GenerateUniqueWalletNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		number := RandomWalletNumber(seededRand)

		var count int64
		if err := tx.Model(&models.User{}).Where("wallet_number = ?", number).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
}
