// Package engine implements the tournament progression engine.
//
// The engine ties the pure pieces together: it builds brackets from the
// entrant source, schedules them, applies result updates, and persists the
// whole state atomically.
//
// ARCHITECTURE:
//
// Single-Writer Model:
// Exactly one admin session mutates a given event's state at a time. Every
// mutating operation (record, reset) loads the state, transforms it in
// memory, and replaces it with a single atomic store write. There are no
// partial field updates, no background tasks, and no blocking operations
// beyond the store round-trip.
//
// Result Processing Flow:
//  1. RecordResult locates the match and validates the transition
//  2. The winner (if any) is derived from the scores
//  3. Forward references to the match are resolved one hop into the next
//     round; reopening a completed match reverts them, cascading downstream
//  4. The schedule projection is regenerated from the bracket
//  5. The whole state is saved under a fresh revision token
//
// Propagation is one hop per call: a later round cannot have a
// determinable winner before its opponents exist, so multi-round cascades
// happen naturally as each round's results are recorded.
package engine
