package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner measures every size × workload × contender combination.
type Runner struct {
	cfg        Config
	log        *zap.Logger
	runID      string
	workloads  []Workload
	contenders []Contender
	progress   time.Duration
	now        func() time.Time
}

// NewRunner validates cfg and resolves its workload and contender names.
// A nil logger is replaced with a no-op logger.
func NewRunner(cfg Config, log *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	ws, err := LookupWorkloads(cfg.Workloads)
	if err != nil {
		return nil, err
	}
	cs, err := LookupContenders(cfg.Contenders)
	if err != nil {
		return nil, err
	}
	progress, err := cfg.progressInterval()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	return &Runner{
		cfg:        cfg,
		log:        log.With(zap.String("run_id", runID)),
		runID:      runID,
		workloads:  ws,
		contenders: cs,
		progress:   progress,
		now:        time.Now,
	}, nil
}

// RunID identifies this runner's results.
func (r *Runner) RunID() string { return r.runID }

// Measurements returns how many results Run produces.
func (r *Runner) Measurements() int {
	return len(r.cfg.Sizes) * len(r.workloads) * len(r.contenders)
}

// Run performs every measurement in order. It checks ctx between
// measurements and returns the results gathered so far with ctx.Err()
// when cancelled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	total := r.Measurements()
	results := make([]Result, 0, total)
	ticker := newBatchTicker(r.progress, r.cfg.ProgressEvery, r.now)

	r.log.Info("run started",
		zap.Ints("sizes", r.cfg.Sizes),
		zap.Int("iterations", r.cfg.Iterations),
		zap.Int("rounds", r.cfg.Rounds),
		zap.Int("measurements", total),
	)
	start := r.now()

	for _, size := range r.cfg.Sizes {
		for _, w := range r.workloads {
			for _, c := range r.contenders {
				if done(ctx) {
					r.log.Warn("run cancelled", zap.Int("completed", len(results)), zap.Int("measurements", total))
					return results, ctx.Err()
				}

				res, err := r.measure(c, w, size)
				if err != nil {
					return results, err
				}
				results = append(results, res)

				r.log.Debug("measured",
					zap.String("contender", c.Name),
					zap.String("workload", w.Name),
					zap.Int("size", size),
					zap.Float64("ns_per_op", res.NsPerOp()),
				)
				if ticker.tick() {
					r.log.Info("progress", zap.Int("completed", len(results)), zap.Int("measurements", total))
				}
			}
		}
	}

	r.log.Info("run finished", zap.Duration("elapsed", r.now().Sub(start)))
	return results, nil
}

func (r *Runner) measure(c Contender, w Workload, size int) (Result, error) {
	samples := make([]time.Duration, 0, r.cfg.Rounds)
	var ops int

	for round := 0; round < r.cfg.Rounds; round++ {
		f, err := c.New(size)
		if err != nil {
			return Result{}, fmt.Errorf("create %s: %w", c.Name, err)
		}

		start := time.Now()
		n, err := w.Run(f, size, r.cfg.Iterations)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("%s/%s size %d: %w", w.Name, c.Name, size, err)
		}
		ops = n
		samples = append(samples, elapsed)
	}

	return Result{
		RunID:     r.runID,
		Contender: c.Name,
		Workload:  w.Name,
		Size:      size,
		Rounds:    r.cfg.Rounds,
		Ops:       ops,
		Elapsed:   median(samples),
	}, nil
}

// done performs a non-blocking check of ctx.
func done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
