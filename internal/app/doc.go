// Package app provides the main application logic of the media maintenance CLI.
// It wires the configuration, the attachment store, and the storage backend
// into the reference media library and runs the import, list, regenerate,
// and delete commands against it.
package app
