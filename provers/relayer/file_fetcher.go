package relayer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	lctypes "github.com/ethbeacon/lightclient/types"
)

// FileFetcher implements Fetcher by reading fixture JSON files from a
// directory, one file per period/slot, matching the teacher's
// single-file FileFetcher shape but generalized to the directory layout
// a poller walking many periods needs.
type FileFetcher struct {
	Dir string
}

// NewFileFetcher creates a new FileFetcher rooted at dir.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

// SyncCommitteePeriodUpdate reads and parses
// "<dir>/sc-update-<period>.json".
func (f *FileFetcher) SyncCommitteePeriodUpdate(period uint64) (*lctypes.SyncCommitteePeriodUpdate, error) {
	path := filepath.Join(f.Dir, fmt.Sprintf("sc-update-%d.json", period))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var update lctypes.SyncCommitteePeriodUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &update, nil
}

// Block reads and parses "<dir>/block-<slot>.json".
func (f *FileFetcher) Block(slot uint64) (*lctypes.BlockUpdate, error) {
	path := filepath.Join(f.Dir, fmt.Sprintf("block-%d.json", slot))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var update lctypes.BlockUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &update, nil
}
