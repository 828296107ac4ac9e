// Package bench compares the chained hash table against Go's built-in map by
// timing batches of add, get and remove operations.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"go.uber.org/zap"

	"chained_hashtable/hashtable"
	"chained_hashtable/keys"
)

// Runner executes the configured rounds. It drives every container from the
// calling goroutine.
type Runner struct {
	cfg      Config
	ops      []Operation
	subjects []Subject
	log      *zap.Logger
}

// NewRunner validates cfg. A nil logger discards log output.
func NewRunner(cfg Config, log *zap.Logger, subjects ...Subject) (*Runner, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	ops, err := ParseOperations(cfg.Operations)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	if len(subjects) == 0 {
		subjects = DefaultSubjects()
	}

	return &Runner{cfg: cfg, ops: ops, subjects: subjects, log: log}, nil
}

// Run measures warmup plus cfg.Rounds rounds and summarizes the measured
// ones. It stops between batches when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Config:  r.cfg,
		Started: time.Now(),
		Chains:  r.chainStats(),
	}

	samples := make(map[resultKey][]Sample)
	total := r.cfg.Warmup + r.cfg.Rounds

	for round := 0; round < total; round++ {
		warm := round < r.cfg.Warmup

		for _, op := range r.ops {
			w := NewWorkload(r.cfg.KeyCount())

			for _, subject := range r.subjects {
				err := ctx.Err()
				if err != nil {
					return nil, err
				}

				s := r.measure(w, op, subject)
				report.TotalOps = std.SumAssumeNoOverflow(report.TotalOps, uint64(s.Ops))

				r.log.Debug("batch",
					zap.Int("round", round),
					zap.Bool("warmup", warm),
					zap.String("op", string(op)),
					zap.String("subject", subject.Name),
					zap.Duration("elapsed", s.Elapsed),
					zap.Uint64("allocs", s.Allocs),
				)

				if !warm {
					k := resultKey{subject: subject.Name, op: op}
					samples[k] = append(samples[k], s)
				}
			}
		}

		if !warm {
			r.log.Info("round complete", zap.Int("round", round-r.cfg.Warmup+1), zap.Int("of", r.cfg.Rounds))
		}
	}

	for _, op := range r.ops {
		for _, subject := range r.subjects {
			st, err := summarize(samples[resultKey{subject: subject.Name, op: op}])
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", subject.Name, op, err)
			}

			report.Results = append(report.Results, Result{
				Subject:   subject.Name,
				Operation: op,
				Stats:     st,
			})
		}
	}

	report.Elapsed = time.Since(report.Started)

	return report, nil
}

type resultKey struct {
	subject string
	op      Operation
}

// measure fills a fresh container, then times one batch. Memory statistics
// are read outside the timed region.
func (r *Runner) measure(w Workload, op Operation, subject Subject) Sample {
	c := subject.New(r.cfg.Capacity)
	w.Fill(c)
	batch := w.Batch(op, c)

	runtime.GC()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	batch()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)

	primitive.Assert(w.Verify(op, c))

	return Sample{
		Elapsed: elapsed,
		Ops:     len(w.Search),
		Bytes:   after.TotalAlloc - before.TotalAlloc,
		Allocs:  after.Mallocs - before.Mallocs,
	}
}

// chainStats reports how one populated workload spreads over the table.
func (r *Runner) chainStats() ChainStats {
	h := hashtable.MustNew[keys.UUID, int](r.cfg.Capacity)
	NewWorkload(r.cfg.KeyCount()).Fill(h)
	return chainStats(h.ChainLengths())
}
