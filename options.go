package scanfilter

import "github.com/tamirms/scanfilter/internal/partition"

// FilterOption is a functional option for configuring Filter.
type FilterOption func(*filterConfig)

// LoadOption is a functional option for configuring LoadFile.
type LoadOption func(*loadConfig)

type filterConfig struct {
	chunkWidth int
}

func defaultFilterConfig() *filterConfig {
	return &filterConfig{
		chunkWidth: partition.DefaultChunkWidth,
	}
}

// WithChunkWidth sets the number of consecutive elements each partition
// examines per step. Partitions always cover whole chunks; anything left over
// goes to the sequential residue. Must be at least 1.
func WithChunkWidth(c int) FilterOption {
	return func(cfg *filterConfig) {
		cfg.chunkWidth = c
	}
}

type loadConfig struct {
	sequentialHint bool
}

func defaultLoadConfig() *loadConfig {
	return &loadConfig{
		sequentialHint: true,
	}
}

// WithSequentialHint controls whether LoadFile advises the kernel that the
// file and its mapping are read front to back. Enabled by default.
func WithSequentialHint(enabled bool) LoadOption {
	return func(cfg *loadConfig) {
		cfg.sequentialHint = enabled
	}
}
