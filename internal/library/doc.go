// Package library is the reference media host: it validates and stores
// incoming files through a storage backend, keeps attachment records in a
// SQLite store, and generates image metadata with resized size variants.
// It implements the media.Host boundary the helper functions delegate to.
package library
