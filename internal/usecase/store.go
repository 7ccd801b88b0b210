package usecase

import (
	"time"

	"github.com/Samitho456/prepper-frontend/internal/infrastructure/cache"
	"github.com/sirupsen/logrus"
)

// StoreConfig holds configuration shared by the catalog stores
type StoreConfig struct {
	CacheTTL time.Duration
}

func (c StoreConfig) ttl() time.Duration {
	if c.CacheTTL <= 0 {
		return cache.DefaultTTL
	}
	return c.CacheTTL
}

func storeLogger(logger logrus.FieldLogger, store string) logrus.FieldLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("store", store)
}
