// Package whittle is the embedding surface of a JavaScript parser and
// minifier. Two calls cover it: Parse returns a serialized syntax tree
// with comments and syntax diagnostics, Minify returns transformed code
// with an optional source map.
//
// Everything the two calls return is boundary-safe: plain data with byte
// offsets into the original text, no handles into engine internals. Each
// call owns all of its state; concurrent calls need no coordination.
//
// Configuration follows the boolean-or-object convention: each pipeline
// stage accepts true, false, or a partial detail record, modeled by the
// Toggle type. An omitted stage runs with defaults; only an explicit
// false skips it.
package whittle
