package segarray

import (
	"fmt"

	"github.com/npillmayer/segarray/page"
)

const (
	// DefaultPageLimit is the maximum number of slots per page, 2^26.
	DefaultPageLimit = 1 << 26
	// DefaultGrowthHint is the initial capacity of pages created by InsertBack.
	DefaultGrowthHint = 1 << 16
	// DefaultWorkers is the number of goroutines used by ParallelTransform
	// if clients do not request a specific count.
	DefaultWorkers = 2
)

// Config configures a segmented array. The zero value selects the defaults.
type Config struct {
	// PageLimit is the maximum number of slots per page. Must be a power of two.
	PageLimit int
	// GrowthHint is the initial capacity of a page started by InsertBack.
	// It is clipped to PageLimit.
	GrowthHint int
	// Workers is the default worker count for parallel transforms.
	Workers int
}

func (cfg Config) normalized() Config {
	if cfg.PageLimit == 0 {
		cfg.PageLimit = DefaultPageLimit
	}
	if cfg.GrowthHint <= 0 {
		cfg.GrowthHint = DefaultGrowthHint
	}
	cfg.GrowthHint = min(cfg.GrowthHint, cfg.PageLimit)
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if !page.IsPowerOfTwo(cfg.PageLimit) {
		return fmt.Errorf("%w: page limit %d is not a positive power of two",
			ErrInvalidConfig, cfg.PageLimit)
	}
	return nil
}

// Option configures the construction of an array.
type Option[T any] func(*options[T])

type options[T any] struct {
	cfg   Config
	size  int
	fill  T
	holes bool
}

// WithConfig sets the array configuration.
func WithConfig[T any](cfg Config) Option[T] {
	return func(o *options[T]) {
		o.cfg = cfg
	}
}

// WithSize pre-sizes an array to n elements, each set to fill.
//
// The array will consist of ceil(n/PageLimit) pages, all but the last of them
// full.
func WithSize[T any](n int, fill T) Option[T] {
	return func(o *options[T]) {
		o.size = n
		o.fill = fill
		o.holes = false
	}
}

// WithHoles pre-sizes an array to n slots, all of them holes.
//
// The element count is nevertheless set to n, as it tracks page lengths
// (see GetTotalLen).
func WithHoles[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.size = n
		o.holes = true
	}
}
