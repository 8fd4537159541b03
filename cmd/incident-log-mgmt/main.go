package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/detection"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/incidents"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/ingest"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/metrics"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/router"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/storage"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v2"
)

const serviceName string = "incident-log-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

type appConfig struct {
	Ingest    ingest.Config    `yaml:"ingest"`
	Detection detection.Config `yaml:"detection"`
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		controlPort:   "8000",

		configurationFile: "/opt/incidents/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "incidents",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfg, err := loadAppConfig(flags[configurationFile])
	exitIf(err, logger, "could not load configuration file")

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	incidentSvc := incidents.New(s, messenger)

	ingestor := ingest.New(s, &cfg.Ingest)
	ingestor.Start(ctx)
	defer ingestor.Stop(ctx)

	engine := detection.NewEngine(s, s, incidentSvc, &cfg.Detection)
	detector := detection.NewDetector(engine, &cfg.Detection)
	detector.Start(ctx)
	defer detector.Stop(ctx)

	err = metrics.Register(prometheus.DefaultRegisterer)
	exitIf(err, logger, "failed to register metrics collectors")

	apiRouter, err := api.RegisterHandlers(ctx, router.New(serviceName), ingestor, incidentSvc, s)
	exitIf(err, logger, "failed to register handlers")

	apiServer := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: apiRouter,
	}
	controlServer := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[controlPort],
		Handler: newControlMux(),
	}

	errChan := make(chan error, 2)

	go func() {
		logger.Info("starting api server", "address", apiServer.Addr)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	go func() {
		logger.Info("starting control server", "address", controlServer.Addr)
		if err := controlServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Error("server failure", "err", err.Error())
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("api server shutdown failed", "err", err.Error())
	}
	if err := controlServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("control server shutdown failed", "err", err.Error())
	}
}

func newControlMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}

func loadAppConfig(path string) (*appConfig, error) {
	cfg := &appConfig{
		Ingest:    *ingest.DefaultConfig(),
		Detection: *detection.DefaultConfig(),
	}

	f, err := os.Open(path)
	if err != nil {
		// run on defaults when no configuration file has been mounted
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
