// Package cli parses lvtopo command lines, validates user input and maps
// failures to process exit codes. It translates subcommands and flags into
// an app.Config.
package cli
