// Package watch re-runs a catalog pipeline whenever the catalog file
// changes on disk, with debouncing so editor save bursts trigger a
// single reload.
package watch
