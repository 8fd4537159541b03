package detection

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/matryer/is"
)

func TestSkipsCycleWhenLeaseHeldElsewhere(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	mocks.leases.AcquireLeaseFunc = func(ctx context.Context, lockID string, duration time.Duration) (types.Lease, bool, error) {
		return types.Lease{}, false, nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)
	is.NoErr(e.RunTick(ctx))

	is.Equal(0, len(mocks.logs.ErrorCountsPerMinuteCalls()))
	is.Equal(0, len(mocks.leases.ReleaseLeaseCalls()))
	is.Equal(0, len(mocks.incidents.AddCalls()))
}

func TestWarmupGuardPerformsNoWrites(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(2, 3, 4), nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)
	is.NoErr(e.RunTick(ctx))

	is.Equal(0, len(mocks.logs.CountUncorrelatedErrorsCalls()))
	is.Equal(0, len(mocks.incidents.AddCalls()))
	is.Equal(0, len(mocks.logs.CorrelateErrorsCalls()))
	is.Equal(1, len(mocks.leases.ReleaseLeaseCalls()))
}

func TestDeclaresCriticalIncidentOnStrongDeviation(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	// mean 2.8, stddev ~0.748 -> z ~9.63 for a current count of 10
	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(2, 3, 2, 4, 3), nil
	}
	mocks.logs.CountUncorrelatedErrorsFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 10, nil
	}
	mocks.logs.CorrelateErrorsFunc = func(ctx context.Context, cutoff time.Time, incidentID string) (int64, error) {
		return 10, nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)
	is.NoErr(e.RunTick(ctx))

	is.Equal(1, len(mocks.incidents.AddCalls()))

	created := mocks.incidents.AddCalls()[0].Incident
	is.Equal(types.IncidentSeverityCritical, created.Severity)
	is.Equal(types.IncidentStatusOpen, created.Status)

	is.Equal(1, len(mocks.logs.CorrelateErrorsCalls()))
	is.Equal("inc-1", mocks.logs.CorrelateErrorsCalls()[0].IncidentID)
	is.Equal(1, len(mocks.leases.ReleaseLeaseCalls()))
}

func TestColdStartSentinelDeclaresCritical(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	// zero variance baseline with a first burst takes the sentinel path
	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(0, 0, 0, 0, 0), nil
	}
	mocks.logs.CountUncorrelatedErrorsFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 6, nil
	}
	mocks.logs.CorrelateErrorsFunc = func(ctx context.Context, cutoff time.Time, incidentID string) (int64, error) {
		return 6, nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)
	is.NoErr(e.RunTick(ctx))

	is.Equal(1, len(mocks.incidents.AddCalls()))
	is.Equal(types.IncidentSeverityCritical, mocks.incidents.AddCalls()[0].Incident.Severity)
}

func TestNoiseFloorSuppressesNearSilentService(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	// a handful of errors in a near-silent service scores an unbounded z but
	// stays below the absolute floor
	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(0, 0, 0, 0, 0), nil
	}
	mocks.logs.CountUncorrelatedErrorsFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 3, nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)
	is.NoErr(e.RunTick(ctx))

	is.Equal(0, len(mocks.incidents.AddCalls()))
	is.Equal(0, len(mocks.logs.CorrelateErrorsCalls()))
}

func TestCorrelationMakesRepeatedTicksIdempotent(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	correlated := false

	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(2, 3, 2, 4, 3), nil
	}
	mocks.logs.CountUncorrelatedErrorsFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		if correlated {
			return 0, nil
		}
		return 10, nil
	}
	mocks.logs.CorrelateErrorsFunc = func(ctx context.Context, cutoff time.Time, incidentID string) (int64, error) {
		correlated = true
		return 10, nil
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)

	is.NoErr(e.RunTick(ctx))
	is.NoErr(e.RunTick(ctx))

	is.Equal(1, len(mocks.incidents.AddCalls()))
	is.Equal(1, len(mocks.logs.CorrelateErrorsCalls()))
}

func TestFailedTickStillReleasesLease(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return nil, fmt.Errorf("store unavailable")
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)

	err := e.RunTick(ctx)
	is.True(err != nil)

	is.Equal(1, len(mocks.leases.ReleaseLeaseCalls()))
	is.Equal("token-1", mocks.leases.ReleaseLeaseCalls()[0].HolderToken)
	is.Equal(0, len(mocks.incidents.AddCalls()))
}

func TestNoCorrelationWhenIncidentCreationFails(t *testing.T) {
	is, ctx, mocks := testSetup(t)

	mocks.logs.ErrorCountsPerMinuteFunc = func(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
		return buckets(2, 3, 2, 4, 3), nil
	}
	mocks.logs.CountUncorrelatedErrorsFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 10, nil
	}
	mocks.incidents.AddFunc = func(ctx context.Context, incident types.Incident) (types.Incident, error) {
		return types.Incident{}, fmt.Errorf("store unavailable")
	}

	e := NewEngine(mocks.leases, mocks.logs, mocks.incidents, nil)

	err := e.RunTick(ctx)
	is.True(err != nil)

	is.Equal(0, len(mocks.logs.CorrelateErrorsCalls()))
	is.Equal(1, len(mocks.leases.ReleaseLeaseCalls()))
}

func TestLeaseDurationIsShorterThanTickInterval(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	is.True(cfg.LeaseSeconds < cfg.IntervalSeconds)
}

func TestDetectorInvokesEngineOnTicks(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	e := &EngineMock{
		RunTickFunc: func(ctx context.Context) error {
			return nil
		},
	}

	d := NewDetector(e, DefaultConfig()).(*detector)
	d.interval = 10 * time.Millisecond

	d.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for len(e.RunTickCalls()) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	d.Stop(ctx)

	is.True(len(e.RunTickCalls()) >= 2)
}

type engineMocks struct {
	leases    *LeaseStoreMock
	logs      *LogStatsMock
	incidents *IncidentCreatorMock
}

func testSetup(t *testing.T) (*is.I, context.Context, engineMocks) {
	mocks := engineMocks{
		leases: &LeaseStoreMock{
			AcquireLeaseFunc: func(ctx context.Context, lockID string, duration time.Duration) (types.Lease, bool, error) {
				return types.Lease{
					LockID:      lockID,
					HolderToken: "token-1",
					AcquiredAt:  time.Now().UTC(),
					ExpiresAt:   time.Now().UTC().Add(duration),
				}, true, nil
			},
			ReleaseLeaseFunc: func(ctx context.Context, lockID, holderToken string) error {
				return nil
			},
		},
		logs: &LogStatsMock{},
		incidents: &IncidentCreatorMock{
			AddFunc: func(ctx context.Context, incident types.Incident) (types.Incident, error) {
				incident.ID = "inc-1"
				return incident, nil
			},
		},
	}

	return is.New(t), context.Background(), mocks
}

func buckets(counts ...int64) []types.BaselineBucket {
	b := make([]types.BaselineBucket, 0, len(counts))
	ts := time.Now().UTC().Truncate(time.Minute)

	for i, c := range counts {
		b = append(b, types.BaselineBucket{
			Bucket: ts.Add(time.Duration(-i) * time.Minute),
			Count:  c,
		})
	}

	return b
}
