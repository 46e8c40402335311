package domain

// DeleteStatus is the outcome of a physical delete attempt.
type DeleteStatus uint8

const (
	// DeleteOK means the file was deleted.
	DeleteOK DeleteStatus = iota
	// DeleteLocked means the file exists but could not be deleted (e.g. held open by another process).
	DeleteLocked
	// DeleteNotFound means the file did not exist.
	DeleteNotFound
)

// String returns the name of the status.
func (s DeleteStatus) String() string {
	switch s {
	case DeleteOK:
		return "ok"
	case DeleteLocked:
		return "locked"
	case DeleteNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Gone reports whether the file is absent after the attempt.
func (s DeleteStatus) Gone() bool {
	return s == DeleteOK || s == DeleteNotFound
}

// RemovalReason describes why an entry left the memory store.
type RemovalReason uint8

const (
	// ReasonRemoved means the entry was removed explicitly or replaced.
	ReasonRemoved RemovalReason = iota
	// ReasonExpired means the entry reached its absolute expiration.
	ReasonExpired
	// ReasonDependencyChanged means the entry's change subscription fired.
	ReasonDependencyChanged
	// ReasonUnderused means the store scavenged the entry because it was idle.
	ReasonUnderused
)

// String returns the name of the reason.
func (r RemovalReason) String() string {
	switch r {
	case ReasonRemoved:
		return "removed"
	case ReasonExpired:
		return "expired"
	case ReasonDependencyChanged:
		return "dependency-changed"
	case ReasonUnderused:
		return "underused"
	default:
		return "unknown"
	}
}

// Priority controls whether the memory store may scavenge an entry.
type Priority uint8

const (
	// PriorityDefault entries may be scavenged when idle.
	PriorityDefault Priority = iota
	// PriorityPinned entries are never scavenged; they leave only through explicit or dependency removal.
	PriorityPinned
)
