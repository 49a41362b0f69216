// Package polyclust clusters closed planar polygonal shapes that are
// observed only through cyclic, registration-ambiguous feature vectors —
// and turns those features back into explicit polygons when asked.
//
// 🚀 What is polyclust?
//
//	A pure-Go statistical shape library built around two engines:
//		• A registration-aware Gibbs sampler that jointly infers cluster
//		  labels, per-shape cyclic offsets and reflections, and cluster
//		  templates from side-length and interior-angle proportions.
//		• A branch-and-bound reconstructor that inverts a feature pair
//		  into every closed polygon consistent with it.
//
// ✨ Why choose polyclust?
//
//   - Registration built in – cyclic shifts and reflections are latent
//     variables, not preprocessing chores
//   - Deterministic – seed-routed RNG streams; identical results for any
//     worker count
//   - Strict sentinels – every misconfiguration is named before sampling
//     starts; numerical degeneracy never aborts a chain
//
// Everything is organized under four subpackages:
//
//	shape/       — feature pairs, datasets and the dihedral registration group
//	register/    — weighted Gaussian registration scoring against templates
//	cluster/     — the MCMC sampler: options, chain, trace, MAP summaries
//	reconstruct/ — feature-to-polygon inversion with pruned sign search
//
// Quick ASCII example:
//
//	   lengths ─┐                       ┌─ labels, shift/reflect MAPs
//	            ├─► cluster.Cluster ────┤
//	    angles ─┘                       └─ trace ─► diagnostics
//	                      │
//	                      ▼ (per shape, registered)
//	            reconstruct.Reconstruct ─► closed polygons
//
// Dive into DESIGN.md for the algorithmic notes and each package's doc.go
// for contracts, complexity and error lists.
//
//	go get github.com/katalvlaran/polyclust
package polyclust
