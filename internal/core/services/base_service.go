package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/ar_payment_tracker/internal/metrics"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// WithinTx runs fn in a transaction, or directly when no manager is configured.
func (s *BaseService) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.TxManager == nil {
		return fn(ctx)
	}
	return s.TxManager.WithinTx(ctx, fn)
}

// recordLedgerOutcome counts a ledger mutation and logs unexpected failures.
// Caller mistakes and invariant rejections are logged at debug level only.
func (s *BaseService) recordLedgerOutcome(ctx context.Context, operation string, err error, keyvals ...any) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case isRejection(err):
		outcome = metrics.OutcomeRejected
		s.LogDebug(ctx, operation+" rejected", append([]any{slog.String("reason", err.Error())}, keyvals...)...)
	default:
		outcome = metrics.OutcomeError
		s.LogError(ctx, err, operation+" failed", keyvals...)
	}
	metrics.LedgerOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

func isRejection(err error) bool {
	return errors.Is(err, apperrors.ErrInvariantViolation) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate)
}
