package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
	colors map[domain.RowStatus]*color.Color
}

// NewReporter writes to w, or stdout when w is nil. Colour is disabled when
// requested or when the output is not a terminal.
func NewReporter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}
	noColor := cfg.NoColor || !isTerminal(w)

	colors := map[domain.RowStatus]*color.Color{
		domain.RowOK:    color.New(color.FgGreen),
		domain.RowWarn:  color.New(color.FgYellow),
		domain.RowError: color.New(color.FgRed),
		domain.RowInfo:  color.New(color.FgCyan),
	}
	for _, c := range colors {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
		colors: colors,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (r *Reporter) paint(status domain.RowStatus, s string) string {
	if c, ok := r.colors[status]; ok {
		return c.Sprint(s)
	}
	return s
}

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	if report.Title != "" {
		fmt.Fprintln(tw, report.Title)
		fmt.Fprintln(tw, strings.Repeat("=", len(report.Title)))
	}

	if len(report.Rows) == 0 {
		if report.Empty != "" {
			fmt.Fprintln(tw, report.Empty)
		}
		return r.flush(tw)
	}

	if len(report.Columns) > 0 {
		fmt.Fprintln(tw, strings.Join(report.Columns, "\t"))
		underline := make([]string, len(report.Columns))
		for i, col := range report.Columns {
			underline[i] = strings.Repeat("-", len(col))
		}
		fmt.Fprintln(tw, strings.Join(underline, "\t"))
	}

	for _, row := range report.Rows {
		cells := make([]string, len(row.Cells))
		copy(cells, row.Cells)
		if len(cells) > 0 {
			cells[0] = r.paint(row.Status, cells[0])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return r.flush(tw)
}

func (r *Reporter) flush(tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to write text report")
	}
	return nil
}
