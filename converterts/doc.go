// Package converters (directory name converterts, kept from the
// teacher's tree) is the adapter between the internal core.Graph
// representation and the external IncidentProcessChain wire shape
// (spec.md §6), plus spec.md §4.5's Entity Filter retyping pass.
//
// ApplyEntityFilter runs after extractor.Extract and before
// pruner.Prune (SPEC_FULL's pipeline order), retyping nodes whose
// retained evidence is exclusively of a single non-process category.
// ToChain runs last, folding g's own nodes/edges together with any
// story-side nodes/edges bridger.Bridge produced into one
// IncidentProcessChain.
package converters
