// Package cli implements the crmdash command-line interface.
//
// Each Cobra command is a thin wrapper: it loads config, applies its flags
// and hands off to the dashboard, the sampler or the config writer.
//
// # Command Structure
//
//	crmdash                 - Start the dashboard (same as "dashboard")
//	crmdash dashboard       - Start the dashboard
//	crmdash snapshot        - Print one generated snapshot (table or --json)
//	crmdash init            - Write .crmdash.yaml with defaults
//	crmdash version         - Print build information
//	crmdash completion      - Shell completion scripts
//
// # Flag Handling
//
// --config is persistent and available to every subcommand. The dashboard
// flags (--seed, --failure-rate, --no-animation, --static) live on both the
// root and dashboard commands and only override config values the user
// actually passed.
//
// # Output
//
// Errors from internal/errors print in their multi-line form on stderr. In
// --json mode they are written to stdout as a JSONEnvelope instead, with
// codes mapped by ErrorToJSON.
//
// While the dashboard owns the terminal the standard logger is sent to
// crmdash-debug.log when CRMDASH_DEBUG is set, and discarded otherwise.
package cli
