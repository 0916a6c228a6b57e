// Package relayer polls an update source and feeds each fetched update
// into a lightclient.Engine, mirroring the teacher's Relayer.Run polling
// loop (fetch, process, sleep, advance period) with the ZK-proof
// generation step it originally fed replaced by direct verification
// through the engine.
package relayer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ethbeacon/lightclient/lightclient"
	cfgtypes "github.com/ethbeacon/lightclient/provers/types"
)

// Main is the poller's entry point: it constructs a Relayer against the
// given engine and fetcher and runs it. Run retries every failure, so
// Main does not return.
func Main(config *cfgtypes.Config, engine *lightclient.Engine, fetcher cfgtypes.Fetcher, logger zerolog.Logger) error {
	r := NewRelayer(config, engine, fetcher, logger)
	return r.Run()
}

// Relayer polls its Fetcher for successive sync-committee period updates
// and feeds each into the engine.
type Relayer struct {
	config  *cfgtypes.Config
	engine  *lightclient.Engine
	fetcher cfgtypes.Fetcher
	log     zerolog.Logger
}

// NewRelayer constructs a Relayer.
func NewRelayer(config *cfgtypes.Config, engine *lightclient.Engine, fetcher cfgtypes.Fetcher, logger zerolog.Logger) *Relayer {
	return &Relayer{
		config:  config,
		engine:  engine,
		fetcher: fetcher,
		log:     logger,
	}
}

// Run polls for successive sync-committee period updates starting at
// config.InitPeriod, feeding each to the engine, and retrying on fetch
// failure after a pause. A rejected update is logged and the same
// period is fetched again after a pause rather than aborting the loop;
// the period advances only once an update is accepted.
func (r *Relayer) Run() error {
	period := r.config.InitPeriod
	r.log.Info().Uint64("period", period).Msg("starting sync committee period poller")

	interval := time.Duration(r.config.PollIntervalMillis) * time.Millisecond

	for {
		update, err := r.fetcher.SyncCommitteePeriodUpdate(period)
		if err != nil {
			r.log.Warn().Err(err).Uint64("period", period).Msg("failed to fetch update, retrying")
			time.Sleep(interval)
			continue
		}

		if err := r.engine.SyncCommitteePeriodUpdate(*update); err != nil {
			r.log.Error().Err(err).Uint64("period", period).Msg("rejected sync committee period update")
			time.Sleep(interval)
			continue
		}

		r.log.Info().Uint64("period", period).Msg("sync committee period update accepted")
		period++
		time.Sleep(interval)
	}
}
