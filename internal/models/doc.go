// Package models defines the core domain models for Bloom attendance.
//
// # Models
//
//   - Category: one of the three fixed rosters (filles, garcons, coachs)
//   - Rosters: a snapshot of every roster's canonical names
//   - Report: a recorded attendance run with its rendered text
//   - Admin: the account allowed to edit rosters
//
// People are identified by their canonical name strings. Identity for
// matching is the normalized form of the name (see package attendance), never
// the stored bytes.
//
// # Design Principles
//
// 1. **Snapshots in, values out**: rosters are loaded fully before a run and
// never mutated while reconciling
// 2. **Fixed priority**: Categories lists the rosters in the order entries are
// resolved against them
// 3. **Avoid circular references**: Use ID strings instead of pointers for relationships
package models
