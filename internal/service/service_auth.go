package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/crypto"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/internal/utils"
	"github.com/shahparag-spring2021/webapp/models"
)

// authService is the concrete implementation of AuthService.
// It resolves Basic credentials either as a signed token or as a username
// and password pair.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate resolves identifier and secret to a user.
//
// identifier is first verified as a token; a valid, unexpired token whose
// subject names an existing user authenticates the request and secret is
// ignored. Otherwise identifier is looked up as a username and secret is
// checked against the stored password hash.
//
// Returns ErrInvalidCredentials on every mismatch. Repository failures other
// than "not found" are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, identifier, secret string) (models.User, error) {
	log := logger.FromContext(ctx)

	if identifier == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, ok, err := a.authenticateToken(ctx, identifier)
	if err != nil {
		return models.User{}, err
	}
	if ok {
		return user, nil
	}

	user, err = a.userRepository.FindUserByUsername(ctx, identifier)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", identifier).Msg("no user found for credentials")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error looking up user")
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	if !a.hasher.Verify(secret, user.PasswordHash) {
		log.Debug().Str("username", identifier).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// authenticateToken reports ok=false when tokenString is not a valid token
// or names no existing user.
func (a *authService) authenticateToken(ctx context.Context, tokenString string) (models.User, bool, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, false, nil
	}

	user, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("error looking up token subject: %w", err)
	}

	return user, true, nil
}

// IssueToken signs a token bound to user's username that expires after the
// configured duration.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
