// Package app runs lvtopo commands: generating a single topology, building
// every fixture of a manifest, and listing the known kinds. It owns the
// per-run logger and metrics registry; the cli package only turns argv into
// a Config.
package app
