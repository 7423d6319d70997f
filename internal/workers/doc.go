// Package workers determines worker pool sizes from the CPUs actually
// available to the process.
//
// runtime.NumCPU reports the host machine's CPU count even when cgroup
// limits restrict the process to fewer cores. GOMAXPROCS is set from the
// container limit on Go 1.19+, so pool sizes derived from it avoid
// oversubscribing a constrained container.
package workers
