package ladder

import "fmt"

// Validate checks invariants I1, I2, and W1 against the raw node/wire lists,
// exactly as given (before any auto-wiring), along with the per-node checks
// those rely on: non-empty ID, non-negative coordinates, and closed-kind
// membership of every node's Kind field.
//
// Validate returns the first violation found; callers that want every
// violation reported should use diag.CollectModelErrors instead, which runs
// the same checks and keeps going.
func (l *Ladder) Validate() error {
	seen := make(map[string]struct{}, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if n.X < 0 || n.Y < 0 {
			return fmt.Errorf("%w: node %q at (%d,%d)", ErrNegativeCoordinate, n.ID, n.X, n.Y)
		}
		if !ValidKind(n.Kind) {
			return fmt.Errorf("%w: node %q kind %q", ErrUnknownKind, n.ID, n.Kind)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	byID := l.nodesByID()
	for _, w := range l.Wires {
		from, ok := byID[w.From]
		if !ok {
			return fmt.Errorf("%w: wire %q references %q", ErrDanglingConnection, w.ID, w.From)
		}
		to, ok := byID[w.To]
		if !ok {
			return fmt.Errorf("%w: wire %q references %q", ErrDanglingConnection, w.ID, w.To)
		}
		if !(from.X < to.X) {
			return fmt.Errorf("%w: wire %q (%s@%d -> %s@%d)", ErrBackwardConnection, w.ID, from.ID, from.X, to.ID, to.X)
		}
	}

	return nil
}

// nodesByID indexes Nodes by ID. Used internally by Validate and, through
// NodesByID, by core, which needs O(1) node lookup by ID.
func (l *Ladder) nodesByID() map[string]*Node {
	out := make(map[string]*Node, len(l.Nodes))
	for i := range l.Nodes {
		out[l.Nodes[i].ID] = &l.Nodes[i]
	}
	return out
}

// NodesByID is the exported form of nodesByID for use by other packages in
// this module that need to resolve a node ID to its full record.
func (l *Ladder) NodesByID() map[string]*Node {
	return l.nodesByID()
}
