// Package core provides the business logic for export archive ingestion.
//
// This package is the heart of the parser, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Pipeline
//
// A parse invocation takes a set of file blobs and produces one [Result]:
//
//  1. Each file is classified by extension: ZIP archive, delimited text,
//     or spreadsheet.
//  2. Archives are expanded and filtered to recognized entries; everything
//     else passes through directly.
//  3. The tabular reader turns bytes into rows of normalized text cells.
//  4. The header resolver locates the real header row below any descriptive
//     preamble and maps logical field names to column positions through the
//     alias tables in internal/schema.
//  5. The kind's normalizer applies admission rules, extracts fields, and
//     assigns each record a stable content-derived identifier.
//
// Files are processed strictly sequentially. Warnings never abort a run;
// the only terminal failures are a timeout and an input set that yields
// zero usable entries.
//
// # Kind Registry
//
// File kinds are registered at init time using [Register]. Each
// [KindDefinition] pairs a schema.Kind (labels, filename matching, header
// marker, field aliases) with the normalizer that turns resolved rows into
// typed records.
//
// # Invocations
//
// [Service.StartParse] runs the pipeline on its own goroutine under a
// wall-clock timeout. Exactly one completion is delivered per invocation:
// a full Result or an error. A timed-out invocation is abandoned in its
// entirety; no partial result is ever handed out.
package core
