// Package registry maps provider language tags to English descriptions and
// to the language codes the host's detector understands.
//
// The curated table is static configuration: it is loaded once, never
// mutated, and validated up front so authoring mistakes abort a generation
// run instead of silently shrinking the catalog. Tags with no detector
// category stay in the table (they still describe real provider voices) but
// report as unsupported, which excludes their voices downstream.
package registry
