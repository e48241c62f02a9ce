// Package engine orchestrates the full pipeline from spec.md §2's data
// flow diagram: query.Client.BatchAlarms → elector.Elect → builder.BuildGraph
// → analyzer.Analyze → extractor.Extract → converters.ApplyEntityFilter →
// pruner.Prune → explorer.Inject → bridger.Bridge → converters.ToChain.
//
// Per spec.md §7, Build never returns an error: every stage's failure
// degrades to a best-effort result plus a Diagnostic describing what
// degraded, matching the policy table ("skip node", "retain original
// graph", "empty story graph", …) instead of aborting the run.
package engine
