package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"
)

var ErrCodeSpaceExhausted = errors.New("could not mint an unused login code")

// NewLoginCode mints a random 6-digit player login code, re-drawing
// until the code is unused by any player. Codes are handed to players
// in plaintext and typed at the login form, so they stay short and
// numeric.
func NewLoginCode(conn *gorm.DB) (string, error) {
	for attempt := 0; attempt < 50; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
		if err != nil {
			return "", fmt.Errorf("draw login code: %w", err)
		}
		code := fmt.Sprintf("%06d", n.Int64())

		var taken int64
		if err := conn.Model(&models.Player{}).Where("login_code = ?", code).Count(&taken).Error; err != nil {
			return "", err
		}
		if taken == 0 {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

// UploadName prefixes an uploaded filename with a short random token
// so two players can upload the same file name without clobbering
// each other.
func UploadName(original string) string {
	return uuid.NewString()[:8] + "_" + filepath.Base(original)
}
