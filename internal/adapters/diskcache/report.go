package diskcache

import "fmt"

// CleanupReport counts the outcome of a cleanup pass. Per-file failures never abort
// a pass; they are only counted here.
type CleanupReport struct {
	// Removed files are gone.
	Removed int
	// Sentineled files are still present but marked for deletion.
	Sentineled int
	// Failed files could be neither removed nor marked.
	Failed int
}

// Add accumulates other into r.
func (r *CleanupReport) Add(other CleanupReport) {
	r.Removed += other.Removed
	r.Sentineled += other.Sentineled
	r.Failed += other.Failed
}

func (r CleanupReport) String() string {
	return fmt.Sprintf("%d removed, %d marked for deletion, %d failed", r.Removed, r.Sentineled, r.Failed)
}
