package usecase

import (
	"context"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
)

type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

type Mailer interface {
	Send(to, subject, body string, html bool) error
}

// ExportStore stages generated export files for later download.
type ExportStoreRepository interface {
	Save(key string, data []byte, ttl time.Duration) error
	Find(key string) ([]byte, error)
}
