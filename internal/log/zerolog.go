package log

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter(out io.Writer, level Level) *zerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: !isTerminal(out)}).
		Level(zerologLevel(level)).
		With().Timestamp().Logger()
	return &zerologAdapter{logger: logger}
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *zerologAdapter) Debugf(_ context.Context, format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

func (z *zerologAdapter) Infof(_ context.Context, format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

func (z *zerologAdapter) Warnf(_ context.Context, format string, args ...any) {
	z.logger.Warn().Msgf(format, args...)
}

func (z *zerologAdapter) Errorf(_ context.Context, err error, format string, args ...any) {
	ev := z.logger.Error()
	for k, v := range errorFields(err) {
		ev = ev.Str(k, v)
	}
	ev.Msgf(format, args...)
}

func (z *zerologAdapter) WithFields(fields map[string]any) ports.Logger {
	return &zerologAdapter{logger: z.logger.With().Fields(fields).Logger()}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
