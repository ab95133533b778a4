// Package diff classifies the divergence between a locally stored record and
// its remote counterpart.
package diff

// Category represents the conflict category for one logical entity
type Category int

const (
	// None indicates the record is absent on both sides; not actionable
	None Category = iota
	// LocalOnly indicates the record exists only in the local store
	LocalOnly
	// RemoteOnly indicates the record exists only on the remote service
	RemoteOnly
	// DataDiff indicates the record exists on both sides. Presence alone
	// triggers this category; content equality is deliberately NOT checked
	// here — the caller compares content hashes when it matters.
	DataDiff
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case LocalOnly:
		return "local-only"
	case RemoteOnly:
		return "remote-only"
	case DataDiff:
		return "data-diff"
	default:
		return "none"
	}
}

// Actionable reports whether the category requires a resolution
func (c Category) Actionable() bool {
	return c != None
}

// Classify determines the conflict category for a pair of optional snapshots
// of the same logical entity. nil means the side is absent.
// Pure function: no side effects, no I/O.
func Classify[T any](local, remote *T) Category {
	switch {
	case local != nil && remote == nil:
		return LocalOnly
	case local == nil && remote != nil:
		return RemoteOnly
	case local != nil && remote != nil:
		return DataDiff
	default:
		return None
	}
}
