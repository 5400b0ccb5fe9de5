// Package server exposes the control surface over HTTP.
package server

import (
	"context"
	stderrs "errors"
	"net"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/core/service"
	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type Services struct {
	Discovery *service.Discovery
	Control   *service.Control
	Alarms    *service.Alarms
}

type Server struct {
	cfg      Config
	services Services
	gatherer prometheus.Gatherer
	logger   ports.Logger
	handler  http.Handler
}

func New(cfg Config, services Services, gatherer prometheus.Gatherer, logger ports.Logger) (*Server, error) {
	if services.Discovery == nil || services.Control == nil || services.Alarms == nil {
		return nil, errors.New(errors.CodeConfigValidation, "server services cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "server logger cannot be nil")
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		cfg:      cfg,
		services: services,
		gatherer: gatherer,
		logger:   logger.WithFields(map[string]any{"component": "server"}),
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /ec2", s.listInstances)
	mux.HandleFunc("GET /ec2/{instanceId}", s.describeInstance)
	mux.HandleFunc("GET /ec2/overview/{instanceId}", s.instanceOverview)
	mux.HandleFunc("POST /ec2/start", s.startInstance)
	mux.HandleFunc("POST /ec2/stop", s.stopInstance)
	mux.HandleFunc("GET /ec2/sc", s.listSecurityGroups)
	mux.HandleFunc("GET /ec2/sc/{groupId}", s.describeSecurityGroup)
	mux.HandleFunc("POST /ec2/sc", s.createSecurityGroup)
	mux.HandleFunc("GET /ec2/types", s.instanceTypes)
	mux.HandleFunc("GET /ec2/imagesRH", s.images)
	mux.HandleFunc("GET /alarms", s.listAlarms)
	mux.HandleFunc("POST /alarms", s.createAlarm)
	mux.HandleFunc("GET /identity", s.identity)

	return s.instrument(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument bounds every request with the configured timeout and records
// its route, status and duration.
func (s *Server) instrument(next *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		if s.cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
			defer cancel()
		}

		_, route := next.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.Debugf(ctx, "%s %s -> %d in %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.WrapUserFacing(err, errors.CodeConfigValidation, "Could not listen on "+s.cfg.Addr, "Check server.addr.")
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Infof(gctx, "Listening on %s", listener.Addr())
		if err := srv.Serve(listener); err != nil && !stderrs.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, errors.CodeInternal, "http server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if s.cfg.ShutdownTimeout <= 0 {
			return srv.Close()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Infof(shutdownCtx, "Shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
