// Package emit serializes a built catalog into a generated Go source file
// the host application compiles in as read-only data.
package emit
