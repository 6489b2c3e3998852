// Package store provides the persistence layer for rostr.
//
// The package defines the [Store] interface which abstracts the roster
// storage. The backend is a flat JSON file; the whole file is read and
// written on every operation, since the dataset is small and single-user,
// so no incremental format or locking exists.
//
// # Store Interface
//
// The [Store] interface defines two operations:
//   - Load reads the complete roster, reporting rejected malformed entries
//   - Save overwrites the data file with the complete roster
//
// Use [NewFileStore] to build the file-backed implementation:
//
//	st := store.NewFileStore("students.json")
//	students, skipped, err := st.Load()
//
// # Corrupt Data
//
// A data file that exists but is not a JSON list yields a [CorruptError].
// Callers are expected to warn and continue with an empty roster rather
// than fail; individual entries inside a well-formed list that lack any of
// the record fields are skipped and counted instead.
//
// # Exports
//
// [ExportCSVFile] and [ExportXLSXFile] serialize the roster for use
// outside the tool. Exports are one-way; the data file remains the only
// source the roster is ever loaded from.
package store
