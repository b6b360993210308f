// Package store persists inventory records in SQLite.
//
// A scan run replaces the database file wholesale: Create removes any prior
// file at the path before applying the schema, records are bulk-inserted in a
// single transaction, and Enrich then adds the est_size_h265_mb column and
// populates it from the codec ratio table. Open attaches to an existing
// database for read-only reporting.
package store
