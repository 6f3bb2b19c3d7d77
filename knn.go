package go_diveknn

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const MinK = 1

// Option configures a Classifier.
type Option func(*options)

type options struct {
	metricName string
	metric     DistanceMetric
	tieBreak   TieBreakPolicy
	collector  CollectorFactory
	workers    int
	logger     *slog.Logger
}

// WithMetric selects a built-in distance metric by name (see MetricNames).
func WithMetric(name string) Option {
	return func(o *options) { o.metricName = name }
}

// WithDistance installs a custom metric. It takes precedence over WithMetric.
func WithDistance(metric DistanceMetric) Option {
	return func(o *options) { o.metric = metric }
}

func WithTieBreak(policy TieBreakPolicy) Option {
	return func(o *options) { o.tieBreak = policy }
}

// WithCollector replaces the NeighbourSet used for each query.
func WithCollector(factory CollectorFactory) Option {
	return func(o *options) { o.collector = factory }
}

// WithWorkers evaluates records on n goroutines. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Classifier is a k-nearest-neighbours classifier over a fixed collection of
// dive records. The collection is read-only once the classifier is built.
type Classifier struct {
	records   []Record
	k         int
	scale     ScaleStatistics
	metric    DistanceMetric
	tieBreak  TieBreakPolicy
	collector CollectorFactory
	workers   int
	logger    *slog.Logger
}

// NewClassifier validates k, computes the scale statistics of records and
// resolves the distance metric.
func NewClassifier(records []Record, k int, opts ...Option) (*Classifier, error) {
	if k < MinK {
		return nil, &InvalidConfigError{Field: "k", Value: k, Reason: fmt.Sprintf("k must be at least %d", MinK)}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	o := options{
		tieBreak:  FirstSeen,
		collector: newNeighbourSetCollector,
		workers:   1,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	scale, err := ComputeScale(records)
	if err != nil {
		return nil, err
	}
	metric := o.metric
	if metric == nil {
		metric, err = NewMetric(o.metricName, scale)
		if err != nil {
			return nil, fmt.Errorf("resolve metric: %w", err)
		}
	}
	if o.workers < 1 {
		o.workers = 1
	}

	return &Classifier{
		records:   append([]Record(nil), records...),
		k:         k,
		scale:     scale,
		metric:    metric,
		tieBreak:  o.tieBreak,
		collector: o.collector,
		workers:   o.workers,
		logger:    o.logger,
	}, nil
}

func (c *Classifier) K() int {
	return c.k
}

func (c *Classifier) Len() int {
	return len(c.records)
}

func (c *Classifier) Scale() ScaleStatistics {
	return c.scale
}

// Record returns the record at index i.
func (c *Classifier) Record(i int) Record {
	return c.records[i]
}

// Nearest resets collector and fills it with the neighbours of record i,
// drawn from every other record in the collection.
func (c *Classifier) Nearest(i int, collector Collector) []Neighbour {
	return c.scan(c.records[i], i, collector)
}

func (c *Classifier) scan(query Record, exclude int, collector Collector) []Neighbour {
	collector.Reset()
	for j, candidate := range c.records {
		// Records are excluded by position, so duplicates of the query still count.
		if j == exclude {
			continue
		}
		collector.Offer(Neighbour{index: j, record: candidate, distance: c.metric.Distance(query, candidate)})
	}
	return collector.Neighbours()
}

// Predict classifies a record that is not part of the collection, using
// every stored record as a candidate.
func (c *Classifier) Predict(query Record) Prediction {
	neighbours := c.scan(query, -1, c.collector(c.k))
	return Prediction{
		Index:      -1,
		Actual:     query.label,
		Predicted:  Vote(neighbours, c.tieBreak),
		Neighbours: neighbours,
	}
}

func (c *Classifier) classify(i int, collector Collector) Prediction {
	neighbours := c.Nearest(i, collector)
	return Prediction{
		Index:      i,
		Actual:     c.records[i].label,
		Predicted:  Vote(neighbours, c.tieBreak),
		Neighbours: neighbours,
	}
}

// Evaluate runs leave-one-out cross-validation: every record is classified
// against all the others and compared with its own label.
func (c *Classifier) Evaluate(ctx context.Context) (*Result, error) {
	n := len(c.records)
	predictions := make([]Prediction, n)
	c.logger.Debug("evaluation started", "records", n, "k", c.k, "workers", c.workers)

	workers := min(c.workers, n)
	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			// Each worker owns its scratch collector.
			collector := c.collector(c.k)
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				predictions[i] = c.classify(i, collector)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	result := &Result{K: c.k, Total: n, Predictions: predictions}
	for _, p := range predictions {
		if p.Correct() {
			result.Correct++
		}
	}
	c.logger.Info("evaluation finished", "k", c.k, "correct", result.Correct, "total", n, "percentage", result.Percentage())
	return result, nil
}

// Sweep evaluates records once for every k in ks.
func Sweep(ctx context.Context, records []Record, ks []int, opts ...Option) ([]*Result, error) {
	results := make([]*Result, 0, len(ks))
	for _, k := range ks {
		classifier, err := NewClassifier(records, k, opts...)
		if err != nil {
			return nil, err
		}
		result, err := classifier.Evaluate(ctx)
		if err != nil {
			return nil, fmt.Errorf("k=%d: %w", k, err)
		}
		results = append(results, result)
	}
	return results, nil
}
