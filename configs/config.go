package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigFloat reads a numeric setting, falling back to def when the variable
// is unset or unparsable.
func ConfigFloat(key string, def float64) float64 {
	raw := Config(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using default %.2f", raw, key, def)
		return def
	}
	return v
}

// SignupBonus is the starting balance credited to every new account.
func SignupBonus() float64 { return ConfigFloat("SIGNUP_BONUS", 500) }

// TopUpBounds returns the allowed (min, max) amount for a top-up request.
func TopUpBounds() (float64, float64) {
	return ConfigFloat("TOPUP_MIN", 50), ConfigFloat("TOPUP_MAX", 10000)
}

// FaceToFaceRate is the fixed price of a live mentorship session.
func FaceToFaceRate() float64 { return ConfigFloat("FACE_TO_FACE_RATE", 500) }
