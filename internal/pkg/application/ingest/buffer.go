package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/metrics"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// ErrCapacityExceeded is returned by Submit when the number of pending
// records has reached the configured bound. Records already buffered are
// kept; it is the new submission that is rejected.
var ErrCapacityExceeded = errors.New("ingestion buffer is at capacity")

//go:generate moq -rm -out logingestor_mock.go . LogIngestor
type LogIngestor interface {
	Submit(ctx context.Context, record types.LogRecord) error
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

//go:generate moq -rm -out logstore_mock.go . LogStore
type LogStore interface {
	AddLogs(ctx context.Context, records []types.LogRecord) error
}

type Config struct {
	BatchSize            int `yaml:"batchSize"`
	FlushIntervalSeconds int `yaml:"flushIntervalSeconds"`
	MaxPending           int `yaml:"maxPending"`
}

func DefaultConfig() *Config {
	return &Config{
		BatchSize:            100,
		FlushIntervalSeconds: 5,
		MaxPending:           10000,
	}
}

type buffer struct {
	store LogStore

	batchSize  int
	interval   time.Duration
	maxPending int

	mu      sync.Mutex
	pending []types.LogRecord

	wakeup chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

func New(store LogStore, cfg *Config) LogIngestor {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &buffer{
		store:      store,
		batchSize:  cfg.BatchSize,
		interval:   time.Duration(cfg.FlushIntervalSeconds) * time.Second,
		maxPending: cfg.MaxPending,
		pending:    make([]types.LogRecord, 0, cfg.BatchSize),
		wakeup:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

// Submit appends the record to the in-memory buffer and returns without
// waiting for persistence. The critical section covers only the append, never
// the bulk write, so producers are not blocked by an in-flight flush.
func (b *buffer) Submit(ctx context.Context, record types.LogRecord) error {
	b.mu.Lock()

	if len(b.pending) >= b.maxPending {
		b.mu.Unlock()
		metrics.CountSubmission(false)
		return ErrCapacityExceeded
	}

	b.pending = append(b.pending, record)
	full := len(b.pending) >= b.batchSize

	b.mu.Unlock()

	metrics.CountSubmission(true)

	if full {
		select {
		case b.wakeup <- struct{}{}:
		default:
		}
	}

	return nil
}

func (b *buffer) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains the buffer with a final flush and waits for the worker to exit.
func (b *buffer) Stop(ctx context.Context) {
	close(b.done)
	b.wg.Wait()
}

func (b *buffer) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.flush(ctx)
		case <-b.wakeup:
			b.flush(ctx)
			ticker.Reset(b.interval)
		case <-b.done:
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			b.flush(flushCtx)
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// flush swaps out the whole pending batch and writes it with one bulk call.
// A failed write puts the batch back at the front of the buffer, in order,
// to be retried on the next trigger. The re-queued records count towards the
// capacity bound, so a store outage eventually surfaces as rejections instead
// of unbounded growth.
func (b *buffer) flush(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	b.mu.Lock()
	batch := b.pending
	b.pending = make([]types.LogRecord, 0, b.batchSize)
	b.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	err := b.store.AddLogs(ctx, batch)
	if err != nil {
		log.Error("could not flush log records, will retry", "count", len(batch), "err", err.Error())
		metrics.ObserveFlush(len(batch), metrics.OutcomeError)

		b.mu.Lock()
		b.pending = append(batch, b.pending...)
		b.mu.Unlock()

		return
	}

	log.Debug(fmt.Sprintf("flushed %d log records", len(batch)))
	metrics.ObserveFlush(len(batch), metrics.OutcomeOK)
}
