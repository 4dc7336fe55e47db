package crypto

import (
	"fmt"

	"github.com/shahparag-spring2021/webapp/internal/config"
)

// NewPasswordHasher builds the hasher selected by cfg.PasswordHasher.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	switch cfg.PasswordHasher {
	case config.HasherBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost), nil
	case config.HasherArgon2id:
		return NewArgon2idHasher(DefaultArgon2Params), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", cfg.PasswordHasher)
	}
}
