package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start blocks until ctx is done or Stop is called. Each run gets its own
// trace id.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Str("poller", p.name).Msgf("Starting poller with interval %s", p.interval)

	for {
		select {
		case <-ticker.C:
			runCtx := tracing.InjectTraceIDWithFields(ctx, map[string]string{"poller": p.name})
			log.Ctx(runCtx).Debug().Msg("Executing poll method")
			if err := p.pollMethod(runCtx); err != nil {
				log.Ctx(runCtx).Error().Err(err).Msg("Error polling")
			} else {
				log.Ctx(runCtx).Debug().Msg("Poll method executed successfully")
			}
		case <-ctx.Done():
			log.Info().Str("poller", p.name).Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
