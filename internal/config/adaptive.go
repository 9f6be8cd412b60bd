package config

import "runtime"

// Default resolution chain (highest priority first):
//   1. CLI flags (--workers, --samples)
//   2. Environment variables (FIXBENCH_WORKERS, FIXBENCH_SAMPLES)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills the worker and sample counts that are still at
// their zero default from the host's CPU count. User-specified values are
// preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	if cfg.Samples == 0 {
		cfg.Samples = EstimateSamples()
	}
	return cfg
}

// EstimateWorkers returns the number of concurrent jobs to run.
func EstimateWorkers() int {
	return max(1, runtime.NumCPU())
}

// EstimateSamples picks a per-domain sample count that keeps a full sweep of
// the catalog within a few seconds on the host.
func EstimateSamples() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1 << 14
	case numCPU <= 4:
		return 1 << 15
	case numCPU <= 16:
		return 1 << 16
	default:
		return 1 << 17
	}
}
