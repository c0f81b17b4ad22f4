// Package main hosts the tickgen CLI entrypoint and command graph.
//
// The Cobra-based command tree loads a remix project, runs the tickflow
// generator, and writes the swaps and sections documents. It also offers a
// dry-run schedule view, the run history ledger, and configuration
// scaffolding. Configuration resolution and logging setup live in
// commandContext so subcommands only deal with their own flags and output.
package main
