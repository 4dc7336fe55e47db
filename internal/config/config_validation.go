// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.App.PasswordHasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	objects := cfg.Storage.Objects
	if objects.Endpoint != "" && objects.Bucket == "" {
		return fmt.Errorf("%w: object storage bucket is required", ErrInvalidStorageConfigs)
	}
	if objects.Endpoint == "" && cfg.Storage.Files.BinaryDataDir == "" {
		return fmt.Errorf("%w: either object storage endpoint or binary data dir is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Adapter.Notifier {
	case NotifierLog:
	case NotifierWebhook:
		if cfg.Adapter.WebhookURL == "" {
			return fmt.Errorf("%w: webhook url is required", ErrInvalidAdapterConfigs)
		}
	case NotifierRedis:
		if cfg.Adapter.RedisAddress == "" || cfg.Adapter.RedisChannel == "" {
			return fmt.Errorf("%w: redis address and channel are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown notifier %q", ErrInvalidAdapterConfigs, cfg.Adapter.Notifier)
	}

	if cfg.Workers.SweepInterval < 0 || cfg.Workers.SweepGracePeriod < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
