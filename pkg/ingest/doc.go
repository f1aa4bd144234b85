// Package ingest turns raw delimited text and workbook sheets into labeled
// tables, coercing locale-formatted numeric tokens (thousands separators)
// into typed scalars.
//
// Coercion is lenient by default: a token that fails to parse becomes the
// Missing sentinel, keeping ingestion total rather than partial. Strict
// mode instead reports a ParseError carrying the offending row and column.
// A column where no token parses as a number at all is kept as text, so
// name and metadata columns survive alongside the measures.
package ingest
