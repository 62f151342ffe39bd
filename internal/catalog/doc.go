// Package catalog defines the canonical data model for the resource
// navigator: resources tagged with themes, barriers, and personas.
//
// A catalog is built once from a raw document and is immutable afterwards.
// Normalization is total — malformed or missing fields degrade to safe
// defaults instead of producing errors, so downstream code needs no nil
// checks.
package catalog
