// Package main hosts the kotoba CLI entrypoint and command graph.
//
// The Cobra command tree loads caption pairs, prints aligned tracks, answers
// "what is showing at T", plays captions against a clock for shadowing
// practice, and serves the local API for the player UI. Configuration
// resolution and logger setup live in the command context so subcommands
// stay declarative.
package main
