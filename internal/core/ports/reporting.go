package ports

import (
	"context"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

//go:generate mockery --name Reporter --output ./mocks --outpkg mocks --case underscore

type Reporter interface {
	Report(ctx context.Context, report domain.Report) error
}
