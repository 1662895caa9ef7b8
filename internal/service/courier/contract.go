//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Sender доставляет подписанный payload на endpoint курьерской системы.
// Ретраи и метрики живут в реализации (gateway), не здесь.
type Sender interface {
	Send(ctx context.Context, payload []byte, authHeader string) (string, error)
}

type AttemptLog interface {
	RecordAttempt(ctx context.Context, attempt entities.CallbackAttempt) error
}
