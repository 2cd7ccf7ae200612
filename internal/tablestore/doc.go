// Package tablestore provides file-based persistence for reaction data
// tables.
//
// Tables are serialized as JSON under one directory, one file per
// reaction and kind, each carrying a BLAKE2b checksum of its payload
// that is verified on load. All methods are concurrency-safe via
// internal locking. A missing table is reported through an ok boolean,
// not an error, so callers can fall back to other data sources.
package tablestore
