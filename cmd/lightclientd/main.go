// Command lightclientd wires a light-client Engine to a Fetcher and runs
// the sync-committee period poller, mirroring the teacher's provers/cmd
// entrypoint shape (NewConfig(os.Args...) feeding a relayer Main).
package main

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"github.com/ethbeacon/lightclient/lightclient"
	"github.com/ethbeacon/lightclient/provers/relayer"
	cfgtypes "github.com/ethbeacon/lightclient/provers/types"
	"github.com/ethbeacon/lightclient/types"
)

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	config := cfgtypes.NewConfig(os.Args[1:]...)
	engine := lightclient.New(types.DefaultConfig(), logger)

	if path := os.Getenv("BOOTSTRAP_FILE"); path != "" {
		if err := bootstrap(engine, path); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("bootstrap failed")
		}
		logger.Info().Str("path", path).Msg("bootstrapped from checkpoint file")
	}

	fetcher := relayer.NewAPIFetcher(config.RPCEndpoint)
	if err := relayer.Main(config, engine, fetcher, logger); err != nil {
		logger.Fatal().Err(err).Msg("poller exited")
	}
}

// bootstrap feeds a trusted checkpoint read from a JSON file into the
// engine's InitialSync before the poller starts.
func bootstrap(engine *lightclient.Engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sync types.InitialSync
	if err := json.Unmarshal(data, &sync); err != nil {
		return err
	}
	return engine.InitialSync(sync)
}
