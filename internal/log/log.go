package log

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/olusolaa/ec2ctl/internal/core/ports"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

type slogAdapter struct {
	logger *slog.Logger
}

// NewLogger builds the logger selected by cfg.Format. Text and JSON go
// through log/slog, console through zerolog.
func NewLogger(cfg Config) (ports.Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := normalizeLevel(cfg.Level)

	switch cfg.Format {
	case FormatConsole:
		return newZerologAdapter(out, level), nil
	case FormatJSON, FormatText, "":
	default:
		return nil, apperrors.New(apperrors.CodeConfigValidation, fmt.Sprintf("unsupported log format %q", cfg.Format))
	}

	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &slogAdapter{logger: slog.New(handler)}, nil
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *slogAdapter) log(ctx context.Context, level slog.Level, err error, format string, args ...any) {
	if !s.logger.Enabled(ctx, level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var attrs []slog.Attr
	for k, v := range errorFields(err) {
		attrs = append(attrs, slog.String(k, v))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

// errorFields flattens err into log attributes, surfacing AppError codes.
func errorFields(err error) map[string]string {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return map[string]string{"error": err.Error()}
	}
	fields := map[string]string{"error_code": string(appErr.Code), "error": appErr.Message}
	if appErr.InternalDetails != "" {
		fields["error_details"] = appErr.InternalDetails
	}
	if appErr.WrappedError != nil {
		fields["error_wrapped"] = appErr.WrappedError.Error()
	}
	return fields
}

func (s *slogAdapter) Debugf(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelDebug, nil, format, args...)
}

func (s *slogAdapter) Infof(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelInfo, nil, format, args...)
}

func (s *slogAdapter) Warnf(ctx context.Context, format string, args ...any) {
	s.log(ctx, slog.LevelWarn, nil, format, args...)
}

func (s *slogAdapter) Errorf(ctx context.Context, err error, format string, args ...any) {
	s.log(ctx, slog.LevelError, err, format, args...)
}

func (s *slogAdapter) WithFields(fields map[string]any) ports.Logger {
	attrs := make([]any, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return &slogAdapter{logger: s.logger.With(attrs...)}
}
