package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	maxLoggedSQLLength = 2000
)

// queryLogger routes GORM output to slog. Statements run inside a request are logged
// with the request logger, so they carry its request_id.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && isExpectedQueryError(err):
		// Misses and unique violations are answered by the repositories; only show them when debugging.
		if l.level >= logger.Info {
			l.trace(ctx, slog.LevelDebug, "Query returned expected error", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
		}
	case err != nil && l.level >= logger.Error:
		l.trace(ctx, slog.LevelError, "Query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "Slow query", sqlAndRowsFn, elapsed, slog.Duration("threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelDebug, "Query", sqlAndRowsFn, elapsed)
	}
}

func (l *queryLogger) trace(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func isExpectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, context.Canceled)
}
