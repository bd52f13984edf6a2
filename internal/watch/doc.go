// Package watch keeps a document index fresh while docnav serves it.
//
// Watcher invalidates the index when markdown below the content root
// changes on disk. Refresher re-checks the content revision on a gocron
// schedule and invalidates only when it moved, which covers git clones
// updated by an external fetch.
package watch

// Invalidator discards a cached corpus. *docs.Index implements it.
type Invalidator interface {
	Invalidate(reason string)
}
