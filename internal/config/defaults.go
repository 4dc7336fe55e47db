package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    "webapp",
			TokenDuration:  time.Hour,
			PasswordHasher: HasherBcrypt,
			BcryptCost:     bcrypt.DefaultCost,
			PublicURL:      "http://localhost:8080",
			LogLevel:       "info",
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  10 << 20,
		},
		Adapter: Adapter{
			Notifier:       NotifierLog,
			RedisChannel:   "books",
			RequestTimeout: 5 * time.Second,
		},
		Workers: Workers{
			SweepGracePeriod: time.Hour,
		},
	}
}
