// Package synth implements the expression synthesizer (component G): a
// memoized backward depth-first walk that turns the predecessor graph
// feeding a terminal into an ordered Boolean/arithmetic condition list,
// factoring out shared prefixes across parallel branches (§4.G).
package synth

import (
	"sort"

	"github.com/plcgo/ladderc/classify"
	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/ir"
	"github.com/plcgo/ladderc/ladder"
)

// Synthesizer holds the memoization cache and in-progress-path set for one
// network's worth of terminal condition assembly. Per §5/§4.G ("cache is
// scoped to one network"), construct a fresh Synthesizer per network; never
// reuse one across networks or across compile calls.
type Synthesizer struct {
	idx   *core.Index
	roles map[string]classify.Role
	diags *diag.Collector

	memo   map[string][]ir.Element
	onPath map[string]bool
}

// New returns a Synthesizer for one network, given the graph index and the
// role assignment classify.Roles produced for that network. diags may be
// nil; when non-nil, every cycle the recursion's path guard catches is
// recorded as a KindCycleDetected warning (§7: "back edge encountered
// during expression synthesis — logged as warning; branch truncated").
func New(idx *core.Index, roles map[string]classify.Role, diags *diag.Collector) *Synthesizer {
	return &Synthesizer{
		idx:    idx,
		roles:  roles,
		diags:  diags,
		memo:   make(map[string][]ir.Element),
		onPath: make(map[string]bool),
	}
}

// Condition returns the driving condition for terminal node id: the ordered
// element list produced by synthesizing across id's filtered predecessors,
// NOT including id's own leaf element (the terminal condition assembly rule
// in §4.G — the terminal's own element is added by the rung emitter, since
// several terminals can share one condition).
func (s *Synthesizer) Condition(id string) []ir.Element {
	preds := s.filteredPredecessors(id)

	switch len(preds) {
	case 0:
		return nil
	case 1:
		return append([]ir.Element(nil), s.build(preds[0])...)
	default:
		return s.branchResult(preds, nil)
	}
}

// build returns the element list leading into (and including) node id,
// memoized per id and guarded against cycles by onPath.
func (s *Synthesizer) build(id string) []ir.Element {
	if cached, ok := s.memo[id]; ok {
		return cached
	}
	if s.onPath[id] {
		// Cycle guard: revisiting a node on the same path yields a null
		// branch rather than recursing forever.
		if s.diags != nil {
			s.diags.Warning(diag.KindCycleDetected, []string{id}, "back edge detected at node %q during expression synthesis; branch truncated", id)
		}
		return nil
	}
	s.onPath[id] = true
	defer delete(s.onPath, id)

	n := s.idx.Node(id)
	preds := s.filteredPredecessors(id)
	suffix := s.suffix(n)

	var result []ir.Element
	switch len(preds) {
	case 0:
		result = suffix
	case 1:
		result = concat(s.build(preds[0]), suffix)
	default:
		result = s.branchResult(preds, suffix)
	}

	s.memo[id] = result
	return result
}

// branchResult implements recurrence case 3 (|P| >= 2): sort predecessors,
// build each branch, apply common-prefix factoring, and append suffix (which
// is nil when called from Condition, since a terminal's own element is never
// part of its condition).
func (s *Synthesizer) branchResult(preds []string, suffix []ir.Element) []ir.Element {
	sorted := append([]string(nil), preds...)
	sort.Slice(sorted, func(i, j int) bool {
		ni, nj := s.idx.Node(sorted[i]), s.idx.Node(sorted[j])
		if ni.Y != nj.Y {
			return ni.Y < nj.Y
		}
		return ni.X < nj.X
	})

	branches := make([][]ir.Element, 0, len(sorted))
	for _, p := range sorted {
		if b := s.build(p); len(b) > 0 {
			branches = append(branches, b)
		}
	}

	prefix, factored := factorCommonPrefix(branches)

	switch len(factored) {
	case 0:
		return concat(prefix, suffix)
	case 1:
		return concat(prefix, factored[0], suffix)
	default:
		branchNodes := make([]ir.Branch, len(factored))
		for i, f := range factored {
			branchNodes[i] = ir.Branch{Elements: f}
		}
		return concat(prefix, []ir.Element{ir.Or(branchNodes)}, suffix)
	}
}

// suffix returns the element(s) node n itself contributes to a chain it
// participates in: its leaf element, optionally followed by a tap marker,
// or nothing at all for a pass-through action (§4.G: "Let E = leaf element
// for n (unless n is pass-through action; then E is absent)").
func (s *Synthesizer) suffix(n *ladder.Node) []ir.Element {
	if s.roles[n.ID] == classify.RolePassThroughAction {
		return nil
	}
	leaf := ir.LeafFromNode(n)
	if s.roles[n.ID] == classify.RoleTapRequiringAction {
		return []ir.Element{leaf, ir.Tap()}
	}
	return []ir.Element{leaf}
}

// filteredPredecessors returns idx.Predecessors(id) with terminal-action
// predecessors excluded: an action with no downstream of its own cannot
// propagate logic forward, so it is defensive to exclude it here even
// though, in a well-formed graph, a node with no successors can never be
// anyone's predecessor in the first place (§4.G: "exclude any predecessor
// that is a pass-through action with no downstream... Keep action
// predecessors only if they have any downstream").
func (s *Synthesizer) filteredPredecessors(id string) []string {
	preds := s.idx.Predecessors(id)
	if len(preds) == 0 {
		return nil
	}

	out := make([]string, 0, len(preds))
	for _, p := range preds {
		pn := s.idx.Node(p)
		if pn == nil {
			continue
		}
		if pn.IsAction() && len(s.idx.Successors(p)) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// factorCommonPrefix implements §4.G's common-prefix factoring: given N>=0
// non-empty branches, find the longest prefix shared (by ir.Equal) across
// every branch at every position, split it off, and drop any branch left
// empty after the split.
func factorCommonPrefix(branches [][]ir.Element) (prefix []ir.Element, factored [][]ir.Element) {
	if len(branches) == 0 {
		return nil, nil
	}
	if len(branches) == 1 {
		return nil, branches
	}

	k := 0
	for {
		if k >= len(branches[0]) {
			break
		}
		candidate := branches[0][k]
		match := true
		for i := 1; i < len(branches); i++ {
			if k >= len(branches[i]) || !ir.Equal(branches[i][k], candidate) {
				match = false
				break
			}
		}
		if !match {
			break
		}
		k++
	}

	prefix = append([]ir.Element(nil), branches[0][:k]...)
	factored = make([][]ir.Element, 0, len(branches))
	for _, b := range branches {
		if rest := b[k:]; len(rest) > 0 {
			factored = append(factored, append([]ir.Element(nil), rest...))
		}
	}
	return prefix, factored
}

// concat allocates a fresh slice and copies every part into it, never
// aliasing a memoized build() result's backing array — appending in place
// to a cached slice would corrupt it for every later caller sharing that
// cache entry.
func concat(parts ...[]ir.Element) []ir.Element {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n == 0 {
		return nil
	}
	out := make([]ir.Element, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
