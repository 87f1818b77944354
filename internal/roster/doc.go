// Package roster defines the user entity and the immutable collection type
// shared by the store, the derived view pipeline, and the UI.
//
// Collections have value semantics: Add, Remove, and Update all return new
// collections with fresh backing arrays. Holders of a previous collection
// never observe later mutations, which is what lets the UI keep rendering a
// snapshot while the store moves on.
package roster
