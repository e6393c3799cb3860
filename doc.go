// Package ladderc compiles 2-D PLC Ladder Logic diagrams into a linear
// intermediate representation.
//
// A diagram is a directed spatial graph of contacts, coils, timers,
// counters, math/compare/move blocks, and the wires connecting them (package
// ladder). Compiling one (package compile) runs in stages:
//
//	autowire  — fills in implicit rail-adjacent connections (component C)
//	core      — builds a forward/reverse adjacency index (component B)
//	diag      — collects structural and semantic diagnostics without aborting
//	network   — partitions the graph into weakly-connected networks (component E)
//	classify  — assigns each node a role within its network (component F)
//	synth     — synthesizes each terminal's driving condition (component G)
//	emit      — groups terminals sharing a condition into rungs (component H)
//	ir        — the wire output model, JSON encoding, and block framing
//
// cmd/ladderc wraps Compile in a CLI (compile/serve/watch); internal/httpapi
// and internal/watch wrap it for HTTP and filesystem-triggered use.
package ladderc
