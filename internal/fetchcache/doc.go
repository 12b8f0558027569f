// Package fetchcache stores raw provider voice payloads in SQLite.
//
// Each successful fetch is recorded as a run with a UUID and timestamp.
// Offline generation replays the newest run, which keeps the emitted tables
// diffable against a known inventory instead of whatever the provider
// happens to return today.
package fetchcache
