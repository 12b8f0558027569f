// Package logging assembles the structured slog loggers voicegen commands
// use.
//
// It owns the console and JSON handlers and centralizes level plumbing so
// every command emits lines with the same shape. Prefer these constructors
// over hand-rolled slog setup.
package logging
