// Package output serializes query and inspection results and routes them
// to their destination (stdout or a file).
//
// Formats are pluggable through a small registry so commands can share
// one --format flag with consistent error messages.
package output
