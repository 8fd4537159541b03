package detection

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Detector owns the repeating timer that drives the engine. Every instance
// of the service runs its own detector; the lease inside the engine decides
// which instance actually executes a pass.
type Detector interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type detector struct {
	engine   Engine
	interval time.Duration

	done chan struct{}
	wg   sync.WaitGroup
}

func NewDetector(engine Engine, cfg *Config) Detector {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &detector{
		engine:   engine,
		interval: time.Duration(cfg.IntervalSeconds) * time.Second,
		done:     make(chan struct{}),
	}
}

func (d *detector) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

func (d *detector) Stop(ctx context.Context) {
	close(d.done)
	d.wg.Wait()
}

func (d *detector) run(ctx context.Context) {
	defer d.wg.Done()

	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := d.engine.RunTick(ctx)
			if err != nil {
				// a failed tick self-heals on the next one
				log.Error("detection tick failed", "err", err.Error())
			}
		case <-d.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
