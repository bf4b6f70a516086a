// Package reconcile merges freshly fetched items into a stored collection
// without destroying operator-maintained data.
//
// Reconciliation runs in two steps, mirroring a report-then-act workflow:
//
//  1. BuildPlan compares each incoming item with the stored collection and
//     records an insert, update or skip Action, together with a Summary of
//     the counts. Nothing is mutated, so a plan can be shown as a dry run.
//  2. Apply executes the plan and returns the new collection.
//
// The model-specific rules (which key identifies an item, when an incoming
// item may overwrite a stored one) live in an Adapter.
//
// # Usage Example
//
//	plan := reconcile.BuildPlan(adapter, stored, fetched)
//	log.Info("plan", zap.Int("added", plan.Summary.Added))
//	if !opts.DryRun {
//	    stored = reconcile.Apply(adapter, plan, stored)
//	}
package reconcile
