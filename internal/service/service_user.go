package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/crypto"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/internal/validators"
	"github.com/shahparag-spring2021/webapp/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	idGenerator    IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser registers a new account. Failures are reported in a fixed
// order: a missing field first, then a taken username, then a weak password.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	validationErr := s.validator.Validate(ctx, req)
	if errors.Is(validationErr, validators.ErrMissingField) {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingField, validationErr)
	}

	_, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("error checking username: %w", err)
	}

	if errors.Is(validationErr, validators.ErrWeakPassword) {
		return models.User{}, fmt.Errorf("%w: %w", ErrWeakPassword, validationErr)
	}
	if validationErr != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRequest, validationErr)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := s.now().UTC()
	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:             s.idGenerator.Generate(),
		Username:       req.Username,
		PasswordHash:   passwordHash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		AccountCreated: now,
		AccountUpdated: now,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		// lost a race with a concurrent registration
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("user_id", user.ID).Msg("user created")

	return user, nil
}

// UpdateUser applies the present fields of req to user. The username can
// never change; account_updated is refreshed on every call.
func (s *userService) UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	if req.Username != nil {
		return models.User{}, ErrImmutableField
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrWeakPassword) {
			return models.User{}, fmt.Errorf("%w: %w", ErrWeakPassword, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if req.FirstName != nil && *req.FirstName != "" {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		passwordHash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.AccountUpdated = s.now().UTC()

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}
