package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sparsevec/internal/testutil"
)

// Config describes a comparison run.
type Config struct {
	// Count is the number of unique IDs inserted into every store.
	// If 0, defaults to 1000.
	Count int

	// MaxID bounds the ID space; IDs are drawn from [1, MaxID].
	// If 0, defaults to 10000.
	MaxID int

	// Seed drives ID generation.
	Seed int64

	// Parallelism is the number of stores measured concurrently.
	// If 0, defaults to 1 so timings do not interfere.
	Parallelism int

	// Kinds selects the stores to measure. If empty, AllKinds.
	Kinds []Kind
}

func (c Config) withDefaults() Config {
	if c.Count == 0 {
		c.Count = 1000
	}
	if c.MaxID == 0 {
		c.MaxID = 10000
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 1
	}
	if len(c.Kinds) == 0 {
		c.Kinds = AllKinds
	}
	return c
}

// Validate reports whether the config can be run.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidConfig, c.Count)
	}
	if c.MaxID < 0 {
		return fmt.Errorf("%w: max id must be non-negative, got %d", ErrInvalidConfig, c.MaxID)
	}
	if c.Count > c.MaxID {
		return fmt.Errorf("%w: count %d exceeds max id %d", ErrInvalidConfig, c.Count, c.MaxID)
	}
	for _, k := range c.Kinds {
		if _, err := ParseKind(string(k)); err != nil {
			return err
		}
	}
	return nil
}

// Result holds the measurements for one store.
type Result struct {
	Kind     Kind
	AddTime  time.Duration
	ReadTime time.Duration
	Len      int
	Hits     int
	Memory   Memory
}

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Run.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}

// Run inserts the same random ID set into every configured store, reads it
// back and returns one Result per kind in cfg.Kinds order.
func Run(ctx context.Context, cfg Config, optFns ...Option) ([]Result, error) {
	o := applyOptions(optFns)

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := testutil.NewRNG(cfg.Seed).UniqueIDs(cfg.Count, cfg.MaxID)
	want := roaring.New()
	for _, id := range ids {
		want.Add(uint32(id))
	}
	o.logger.LogFixture(ctx, len(ids), cfg.MaxID, cfg.Seed)

	results := make([]Result, len(cfg.Kinds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, kind := range cfg.Kinds {
		g.Go(func() error {
			r, err := runScenario(gctx, kind, cfg.MaxID, ids, want, o)
			o.metrics.RecordScenario(kind, err)
			o.logger.LogResult(gctx, r, err)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, kind Kind, maxID int, ids []int, want *roaring.Bitmap, o options) (Result, error) {
	r := Result{Kind: kind}
	if err := ctx.Err(); err != nil {
		return r, err
	}

	store, err := NewStore(kind, maxID)
	if err != nil {
		return r, err
	}
	log := o.logger.WithKind(kind)

	start := time.Now()
	for _, id := range ids {
		store.Set(id, NewPayload(id))
	}
	r.AddTime = time.Since(start)
	o.metrics.RecordAdd(kind, len(ids), r.AddTime)
	log.LogPhase(ctx, "add", len(ids), r.AddTime)

	if err := ctx.Err(); err != nil {
		return r, err
	}

	start = time.Now()
	for _, id := range ids {
		if p, ok := store.Lookup(id); ok && p.ID == id {
			r.Hits++
		}
	}
	r.ReadTime = time.Since(start)
	o.metrics.RecordRead(kind, len(ids), r.Hits, r.ReadTime)
	log.LogPhase(ctx, "read", len(ids), r.ReadTime)

	r.Len = store.Len()
	r.Memory = store.Memory()

	if r.Hits != len(ids) || !store.Bitmap().Equals(want) {
		return r, fmt.Errorf("%w: %s holds %d of %d ids", ErrMismatch, kind, r.Hits, len(ids))
	}
	return r, nil
}
