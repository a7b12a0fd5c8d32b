package cli

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	dbmodel "github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the challenge engine: round scheduler, ledger reconciler and metrics",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	a, err := newApp(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating app")
	}
	defer a.Close()

	err = dbmodel.Setup(ctx, &a.cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up challenge db model")
	}

	// initialize metrics with the metrics port from config
	metricsPort := a.cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	if err := a.counters.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("counter store is not reachable yet")
	}
	// the queue manager reconnects on the next publish
	if err := a.queue.Start(); err != nil {
		log.Warn().Err(err).Msg("notification queue is not reachable yet")
	}

	if err := a.scheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while starting task scheduler")
	}
	a.service.StartTaskRecovery(ctx, a.scheduler.Poll)
	a.service.StartLedgerReconciler(ctx)

	log.Info().Int("metrics_port", metricsPort).Msg("challenge engine started")
	<-ctx.Done()
	log.Info().Msg("shutting down")

	return nil
}
