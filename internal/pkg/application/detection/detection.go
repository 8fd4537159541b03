package detection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/metrics"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// lockID names the single serialized resource the lease protects: the
// detection pass itself.
const lockID = "anomaly-detection"

const criticalZScore = 5.0

//go:generate moq -rm -out leasestore_mock.go . LeaseStore
type LeaseStore interface {
	AcquireLease(ctx context.Context, lockID string, duration time.Duration) (types.Lease, bool, error)
	ReleaseLease(ctx context.Context, lockID, holderToken string) error
}

//go:generate moq -rm -out logstats_mock.go . LogStats
type LogStats interface {
	ErrorCountsPerMinute(ctx context.Context, since time.Time) ([]types.BaselineBucket, error)
	CountUncorrelatedErrors(ctx context.Context, cutoff time.Time) (int64, error)
	CorrelateErrors(ctx context.Context, cutoff time.Time, incidentID string) (int64, error)
}

//go:generate moq -rm -out incidentcreator_mock.go . IncidentCreator
type IncidentCreator interface {
	Add(ctx context.Context, incident types.Incident) (types.Incident, error)
}

type Config struct {
	IntervalSeconds          int     `yaml:"intervalSeconds"`
	LeaseSeconds             int     `yaml:"leaseSeconds"`
	BaselineWindowMinutes    int     `yaml:"baselineWindowMinutes"`
	MeasurementWindowSeconds int     `yaml:"measurementWindowSeconds"`
	MinBaselineBuckets       int     `yaml:"minBaselineBuckets"`
	ZScoreThreshold          float64 `yaml:"zscoreThreshold"`
	MinErrorCount            int64   `yaml:"minErrorCount"`
}

// DefaultConfig ticks every minute with a 45 second lease, so a crashed
// holder's lease always expires before the next tick arrives.
func DefaultConfig() *Config {
	return &Config{
		IntervalSeconds:          60,
		LeaseSeconds:             45,
		BaselineWindowMinutes:    30,
		MeasurementWindowSeconds: 60,
		MinBaselineBuckets:       5,
		ZScoreThreshold:          3.0,
		MinErrorCount:            5,
	}
}

//go:generate moq -rm -out engine_mock.go . Engine
type Engine interface {
	RunTick(ctx context.Context) error
}

type engine struct {
	leases    LeaseStore
	logs      LogStats
	incidents IncidentCreator

	leaseDuration     time.Duration
	baselineWindow    time.Duration
	measurementWindow time.Duration
	minBuckets        int
	zThreshold        float64
	minErrorCount     int64
}

func NewEngine(leases LeaseStore, logs LogStats, incidents IncidentCreator, cfg *Config) Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &engine{
		leases:            leases,
		logs:              logs,
		incidents:         incidents,
		leaseDuration:     time.Duration(cfg.LeaseSeconds) * time.Second,
		baselineWindow:    time.Duration(cfg.BaselineWindowMinutes) * time.Minute,
		measurementWindow: time.Duration(cfg.MeasurementWindowSeconds) * time.Second,
		minBuckets:        cfg.MinBaselineBuckets,
		zThreshold:        cfg.ZScoreThreshold,
		minErrorCount:     cfg.MinErrorCount,
	}
}

// RunTick executes at most one detection pass. Failing to acquire the lease
// is an expected outcome, not an error: another instance is running the pass
// or ran it recently, and this instance simply skips the cycle.
func (e *engine) RunTick(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	lease, held, err := e.leases.AcquireLease(ctx, lockID, e.leaseDuration)
	if err != nil {
		metrics.CountDetectionTick(metrics.OutcomeError)
		return fmt.Errorf("could not acquire detection lease: %w", err)
	}

	if !held {
		log.Debug("detection lease held elsewhere, skipping cycle")
		metrics.CountDetectionTick(metrics.OutcomeSkipped)
		return nil
	}

	defer func() {
		err := e.leases.ReleaseLease(ctx, lease.LockID, lease.HolderToken)
		if err != nil {
			log.Error("could not release detection lease", "err", err.Error())
		}
	}()

	err = e.detect(ctx, log)
	if err != nil {
		metrics.CountDetectionTick(metrics.OutcomeError)
		return err
	}

	return nil
}

func (e *engine) detect(ctx context.Context, log *slog.Logger) error {
	now := time.Now().UTC()

	buckets, err := e.logs.ErrorCountsPerMinute(ctx, now.Add(-e.baselineWindow))
	if err != nil {
		return fmt.Errorf("could not fetch baseline buckets: %w", err)
	}

	if len(buckets) < e.minBuckets {
		log.Debug("insufficient baseline history, skipping detection", "buckets", len(buckets))
		metrics.CountDetectionTick(metrics.OutcomeOK)
		return nil
	}

	counts := make([]int64, len(buckets))
	for i, b := range buckets {
		counts[i] = b.Count
	}

	mean, stddev := meanAndStdDev(counts)

	cutoff := now.Add(-e.measurementWindow)

	current, err := e.logs.CountUncorrelatedErrors(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("could not count current errors: %w", err)
	}

	z := zScore(float64(current), mean, stddev)

	// both conditions must hold: statistical significance and an absolute
	// noise floor, so a single stray error in a near-silent service does not
	// register as an anomaly
	if z <= e.zThreshold || current <= e.minErrorCount {
		log.Debug("no anomaly detected", "current", current, "mean", mean, "stddev", stddev, "zscore", z)
		metrics.CountDetectionTick(metrics.OutcomeOK)
		return nil
	}

	severity := types.IncidentSeverityHigh
	if z > criticalZScore {
		severity = types.IncidentSeverityCritical
	}

	incident, err := e.incidents.Add(ctx, types.Incident{
		Title:    fmt.Sprintf("Error rate anomaly: %d errors in the last %s (z-score %.2f)", current, e.measurementWindow, z),
		Severity: severity,
		Status:   types.IncidentStatusOpen,
	})
	if err != nil {
		return fmt.Errorf("could not create incident: %w", err)
	}

	correlated, err := e.logs.CorrelateErrors(ctx, cutoff, incident.ID)
	if err != nil {
		return fmt.Errorf("could not correlate log records to incident %s: %w", incident.ID, err)
	}

	log.Info("anomaly detected", "incident_id", incident.ID, "severity", string(severity), "zscore", z, "current", current, "correlated", correlated)
	metrics.CountDetectionTick(metrics.OutcomeAnomaly)

	return nil
}
