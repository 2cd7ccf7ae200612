// Package commands defines the fusionrate CLI.
//
// Commands
//
//   - reactions  List the canonical reactions and their constants
//   - xs         Tabulate cross sections over an energy grid
//   - rate       Tabulate rate coefficients over a temperature grid
//
// # Implementation
//
// The root command builds the zap logger and the shared library
// configuration before any subcommand runs; each subcommand constructs
// its Reaction through the public facade, so the CLI exercises exactly
// the API an embedding program would.
package commands
