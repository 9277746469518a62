package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// GenerateSessionToken mints the opaque token the dev session seeder drops
// into the fitnessAuthToken slot. Nothing in this service verifies it: the
// session gate only checks that a token is present, the same way a token
// written by the real login flow would be treated.
func GenerateSessionToken(name string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"exp":  time.Now().Add(models.SessionMaxAge).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
