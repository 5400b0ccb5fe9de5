package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/olusolaa/ec2ctl/internal/adapters/alarmfile"
	"github.com/olusolaa/ec2ctl/internal/config"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/core/service"
	"github.com/olusolaa/ec2ctl/internal/server"
)

// Application holds the wired services every command runs against.
type Application struct {
	Config     *config.Config
	Logger     ports.Logger
	Reporter   ports.Reporter
	Discovery  *service.Discovery
	Control    *service.Control
	Alarms     *service.Alarms
	AlarmFiles *alarmfile.Loader
}

func (a *Application) Render(ctx context.Context, report domain.Report) error {
	return a.Reporter.Report(ctx, report)
}

// ApplyAlarmFile loads the alarm definitions in path and creates them in
// file order, stopping at the first failure.
func (a *Application) ApplyAlarmFile(ctx context.Context, path string, overrides map[string]string) ([]string, error) {
	specs, err := a.AlarmFiles.LoadFile(ctx, path, overrides)
	if err != nil {
		return nil, err
	}
	a.Logger.Infof(ctx, "Applying %d alarms from %s", len(specs), path)
	return a.Alarms.Apply(ctx, specs)
}

func (a *Application) Server(gatherer prometheus.Gatherer) (*server.Server, error) {
	return server.New(server.Config{
		Addr:            a.Config.Server.Addr,
		RequestTimeout:  a.Config.Server.RequestTimeout,
		ShutdownTimeout: a.Config.Server.ShutdownTimeout,
	}, server.Services{
		Discovery: a.Discovery,
		Control:   a.Control,
		Alarms:    a.Alarms,
	}, gatherer, a.Logger)
}
