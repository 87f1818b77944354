// Package store provides the canonical, thread-safe owner of the user
// roster.
//
// The Store is the single writer of the collection; everything else reads
// snapshots. Snapshots are defensive copies, so the UI can hold one across a
// render while mutations land. A monotonically increasing version counter
// identifies each distinct state, which is what the provider and the derived
// view pipeline key their caches on.
//
// A mutex guards the state because Bubble Tea commands complete on their own
// goroutines even though all model updates happen on the program loop.
package store
