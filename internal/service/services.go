package service

import (
	"github.com/shahparag-spring2021/webapp/internal/adapter"
	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/crypto"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/internal/utils"
	"github.com/shahparag-spring2021/webapp/internal/validators"
	"github.com/shahparag-spring2021/webapp/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BookService    BookService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	publisher adapter.Publisher,
	hasher crypto.PasswordHasher,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, validator, ids, logger),
		BookService:    NewBookService(storages, publisher, validator, ids, cfg.App.PublicURL, logger),
		ImageService:   NewImageService(storages, ids, logger),
		AppInfoService: appInfoService,
	}, nil
}
