// Package cli wires together the Cobra command tree for the fsched binary.
//
// It defines the root command and all subcommands (schedule, annotate,
// config, version), binds flags, reads configuration, invokes the fountain
// engine, and returns deterministic exit codes: 0 success, 1 input file not
// found, 2 usage error, 3 runtime error.
package cli
