// Package tournament provides the core types for the bracket and schedule
// engine.
//
// This package contains type definitions, the error taxonomy, and small
// presentation helpers only. All other internal packages import tournament;
// tournament imports nothing internal. This keeps the domain model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - A MatchSlot is a tagged union: concrete entrant, bye, or a forward
//     reference to the winner of an earlier match. Placeholders are never
//     represented as display strings.
//   - A resolved slot keeps its source match ID so a reopened result can be
//     reverted back to forward-reference form without losing provenance.
//   - The schedule is a pure projection of the bracket; it carries no truth
//     of its own and is regenerable from the bracket alone.
//   - All JSON tags use snake_case.
package tournament
