package notification

import (
	"context"

	"mvola/kit/observability"
)

// Service is the downstream-notification stand-in: the systems that would
// eventually consume payment outcomes (ERP, database) are out of scope, so
// outcomes are surfaced as log lines only.
type Service struct {
	logger *observability.Logger
}

func NewService(logger *observability.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Notify(ctx context.Context, reference string, msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info("notify", "reference", reference, "msg", msg)
}
