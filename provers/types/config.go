// Package types holds the configuration and fetcher contract shared by
// the light-client poller, adapted from the teacher's relayer config of
// the same shape.
package types

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the poller's runtime configuration: where updates come
// from and which sync-committee period to resume from.
type Config struct {
	RootDir string

	// RPCEndpoint is used when the poller is wired to an APIFetcher.
	RPCEndpoint string
	// InitPeriod is the sync-committee period the poller starts polling
	// SyncCommitteePeriodUpdate from; period 0 still requires a prior
	// InitialSync to have been fed to the engine out of band.
	InitPeriod uint64

	// PollIntervalMillis is how long the poller sleeps after each
	// attempt, whether the fetch failed, the update was rejected, or it
	// was accepted.
	PollIntervalMillis uint64
}

// NewConfig parses configuration from environment variables, then
// overrides with any matching --flag value pairs in args.
func NewConfig(args ...string) *Config {
	cfg := Config{
		RootDir:            getEnv("ROOT", "."),
		RPCEndpoint:        getEnv("RPC_ENDPOINT", "https://lodestar-sepolia.chainsafe.io/"),
		InitPeriod:         0,
		PollIntervalMillis: 1000,
	}

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			panic(fmt.Errorf("missing argument for %s", args[i]))
		}

		switch args[i] {
		case "--root":
			cfg.RootDir = args[i+1]
			i++
		case "--init-period":
			cfg.InitPeriod, _ = strconv.ParseUint(args[i+1], 10, 64)
			i++
		case "--rpc":
			cfg.RPCEndpoint = args[i+1]
			i++
		case "--poll-interval-ms":
			cfg.PollIntervalMillis, _ = strconv.ParseUint(args[i+1], 10, 64)
			i++
		}
	}

	return &cfg
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
