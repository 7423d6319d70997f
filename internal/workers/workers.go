package workers

import "runtime"

// Count returns the number of workers for a given task type. It respects
// container CPU limits via GOMAXPROCS (Go 1.19+).
//
// The multiplier adjusts for task characteristics:
//   - 1.0 for CPU-bound tasks
//   - 2.0 for I/O-bound tasks
//   - 1.5 for mixed tasks
//
// A positive override takes precedence over the calculation; use it to plumb
// through an operator-provided worker count. The limit parameter caps the
// result to prevent resource exhaustion; use 0 for no limit.
func Count(multiplier float64, limit, override int) int {
	if override > 0 {
		if limit > 0 && override > limit {
			return limit
		}
		return override
	}

	available := runtime.GOMAXPROCS(0)

	workers := int(float64(available) * multiplier)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}

	return workers
}

// ForCPU returns a worker count for CPU-bound tasks (1 per CPU).
func ForCPU(limit, override int) int {
	return Count(1.0, limit, override)
}

// ForMixed returns a worker count for mixed CPU/I/O tasks (1.5 per CPU).
// Image transforms read a file, process it, and write two results, so this
// is the sizing used for the transform pool.
func ForMixed(limit, override int) int {
	return Count(1.5, limit, override)
}
