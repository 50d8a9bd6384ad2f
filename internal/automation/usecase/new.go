package usecase

import (
	"automation-srv/internal/automation"
	"automation-srv/internal/automation/repository"
	"automation-srv/internal/ledger"
	"automation-srv/pkg/encrypter"
	"automation-srv/pkg/instagram"
	"automation-srv/pkg/log"
	"automation-srv/pkg/minio"
)

// implUseCase implements the automation.UseCase interface
type implUseCase struct {
	l         log.Logger
	repo      repository.PostgresRepository
	cache     repository.CacheRepository
	ledger    ledger.Repository
	encrypter encrypter.Encrypter
	instagram instagram.IInstagram
	publisher automation.Publisher
	minio     minio.IMinIO
	bucket    string
}

// New creates a new automation usecase.
// cache, publisher and minio are optional; a nil value disables profile caching,
// delivery events and the drop archive respectively.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	ledgerRepo ledger.Repository,
	enc encrypter.Encrypter,
	ig instagram.IInstagram,
	publisher automation.Publisher,
	minio minio.IMinIO,
	bucket string,
) automation.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		cache:     cache,
		ledger:    ledgerRepo,
		encrypter: enc,
		instagram: ig,
		publisher: publisher,
		minio:     minio,
		bucket:    bucket,
	}
}
