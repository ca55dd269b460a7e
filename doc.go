// Package dockerfile parses Dockerfile source text into a typed tree of
// instructions with precise byte-offset spans.
//
// Parsing is single pass and avoids allocating beyond what a folded escape
// or JSON decode actually requires. Variable expansion (${...}), semantic
// validation of instruction arguments, and any wire-format encoding beyond
// what the caller does with the returned tree are out of scope: this
// package only turns Dockerfile syntax into a tree, nothing more.
package dockerfile
