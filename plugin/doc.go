// Package plugin reads declared metadata out of plugin header comments.
// Every plugin lives in its own directory below a plugins root, and its
// main file carries a comment block whose lines look like "* Version: 1.2.3".
// The package exposes a Registry for explicit wiring plus a configurable
// package-level default, and caches parsed header blocks per slug.
package plugin
