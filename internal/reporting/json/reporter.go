package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

const ReporterTypeJSON = "json"

var api = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Indent bool
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

// Report encodes report.Data. A nil payload is written as an empty array so
// list consumers always get valid JSON.
func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		r.logger.Warnf(ctx, "JSON report generation cancelled.")
		return err
	}

	payload := report.Data
	if payload == nil {
		payload = []any{}
	}

	enc := api.NewEncoder(r.writer)
	if r.config.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to encode JSON report")
	}
	return nil
}
