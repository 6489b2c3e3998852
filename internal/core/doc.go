// Package core provides the business logic layer for rostr.
//
// This package contains all roster functionality separated from UI concerns.
// Functions in this package handle searching, selection mapping, statistics,
// and mutation of the roster with immediate persistence.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - The roster is an explicit value passed to its callers, never ambient
//     package state
//   - UI-specific logic belongs in the cli package, not here
//
// # Mutation and Persistence
//
// The [Roster] owns the in-memory records and their [store.Store]. Every
// mutation persists the whole roster immediately. A failed save keeps the
// in-memory change, so the session stays consistent with what the user did
// and the next successful save writes everything out.
//
// # Search and Selection
//
// [Find] performs the case-insensitive substring scan over names, and
// [SelectMatch] maps a typed selection back to a position in the full
// roster. Selection results are always indices into the original roster,
// never into the filtered candidate list.
package core
