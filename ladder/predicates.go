package ladder

// Kind predicates. Each one is a single comparison (or small switch) against
// the closed Kind enumeration — the tagged-variant style the spec's Design
// Notes (§9) call for, in place of the scattered stringly-typed checks the
// source diagram format would otherwise invite.

// IsContact reports whether n is a contact.
func (n *Node) IsContact() bool { return n.Kind == KindContact }

// IsCoil reports whether n is any coil variant (plain/set/reset).
func (n *Node) IsCoil() bool {
	switch n.Kind {
	case KindCoil, KindCoilSet, KindCoilRset:
		return true
	default:
		return false
	}
}

// IsTimer reports whether n is any timer variant.
func (n *Node) IsTimer() bool {
	switch n.Kind {
	case KindTimerTON, KindTimerTOF, KindTimerTP:
		return true
	default:
		return false
	}
}

// IsCounter reports whether n is any counter variant.
func (n *Node) IsCounter() bool {
	switch n.Kind {
	case KindCounterCTU, KindCounterCTD, KindCounterCTUD:
		return true
	default:
		return false
	}
}

// IsMathBinary reports whether n is a two-operand arithmetic block.
func (n *Node) IsMathBinary() bool {
	switch n.Kind {
	case KindMathAdd, KindMathSub, KindMathMul, KindMathDiv, KindMathMod:
		return true
	default:
		return false
	}
}

// IsMathUnary reports whether n is a one-operand arithmetic block.
func (n *Node) IsMathUnary() bool {
	switch n.Kind {
	case KindMathNeg, KindMathAbs:
		return true
	default:
		return false
	}
}

// IsIncDec reports whether n increments or decrements its operand in place.
func (n *Node) IsIncDec() bool {
	switch n.Kind {
	case KindInc, KindDec:
		return true
	default:
		return false
	}
}

// IsCompareFB reports whether n is a comparison function block.
func (n *Node) IsCompareFB() bool {
	switch n.Kind {
	case KindCompareEQ, KindCompareNEQ, KindCompareGT, KindCompareLT, KindCompareGTE, KindCompareLTE:
		return true
	default:
		return false
	}
}

// IsMove reports whether n copies a value from In1 to Out.
func (n *Node) IsMove() bool { return n.Kind == KindMove }

// IsFunctionBlock reports whether n is any fb_* kind (math, compare, or move).
func (n *Node) IsFunctionBlock() bool {
	return n.IsMathBinary() || n.IsMathUnary() || n.IsIncDec() || n.IsCompareFB() || n.IsMove()
}

// IsAction reports whether n is an "action": a coil, or a non-compare
// function block (§4.A). Timers and counters are a distinct node family with
// their own terminal rule (§4.F: "a timer/counter with no outgoing wires")
// and are not actions; compare function blocks contribute boolean output into
// logic and are never actions either.
func (n *Node) IsAction() bool {
	if n.IsCoil() {
		return true
	}
	return n.IsFunctionBlock() && !n.IsCompareFB()
}
