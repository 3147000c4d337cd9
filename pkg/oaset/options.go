package oaset

import "github.com/pkg/errors"

const (
	defaultCapacity     = 8
	defaultGrowthFactor = 2
)

// loadFactorLimit is the occupancy ratio above which Add grows the bucket
// array. Probing terminates only because the table is never allowed to
// fill up, so the limit must stay below 1.
const loadFactorLimit = 0.7

type config[T comparable] struct {
	capacity     int
	growthFactor int
	hasher       func(T) uint64
}

// Option configures a set at construction time.
type Option[T comparable] func(*config[T])

// WithInitialCapacity sets the starting bucket-array length.
func WithInitialCapacity[T comparable](capacity int) Option[T] {
	return func(c *config[T]) {
		c.capacity = capacity
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity on resize.
func WithGrowthFactor[T comparable](factor int) Option[T] {
	return func(c *config[T]) {
		c.growthFactor = factor
	}
}

// WithHasher replaces the default hash function. The hasher must return
// equal values for equal elements.
func WithHasher[T comparable](hasher func(T) uint64) Option[T] {
	return func(c *config[T]) {
		c.hasher = hasher
	}
}

func (c *config[T]) validate() error {
	if c.capacity <= 0 {
		return errors.Errorf("initial capacity must be positive, got %d", c.capacity)
	}
	if c.growthFactor < 2 {
		return errors.Errorf("growth factor must be at least 2, got %d", c.growthFactor)
	}
	if c.hasher == nil {
		return errors.New("hasher must not be nil")
	}
	return nil
}
