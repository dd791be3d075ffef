package runner

import "github.com/DjordjeVuckovic/trec-sweep/internal/metrics"

const DefaultConcurrency = 1

type Config struct {
	// Concurrency bounds how many experiments are handled at once. With 1 the
	// handler sees experiments strictly in enumeration order.
	Concurrency int
	// ContinueOnError keeps dispatching after a handler fails instead of
	// canceling the remaining experiments.
	ContinueOnError bool
	Metrics         *metrics.Metrics
}

func DefaultConfig() Config {
	return Config{Concurrency: DefaultConcurrency}
}
