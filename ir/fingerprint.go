package ir

import (
	"strconv"
	"strings"
)

// Fingerprint canonically serializes an element list to a string, used both
// as the common-prefix-factoring equality test in synth (§4.G) and as the
// terminal-grouping key in emit (§4.H). A dedicated writer rather than
// reflect.DeepEqual or a generic JSON dump: output shape is pinned to
// exactly the fields each Element kind carries, so two elements that differ
// only in a field their kind does not use (e.g. a contact's unused
// DataType) can never compare unequal by accident, and the result is stable
// across Go versions and map-iteration orders — unlike a naive %#v dump.
//
// The serialization is address-sensitive: two contacts gated by different
// memory locations must never fingerprint identically, or S3/S4-style
// branch merges would silently conflate distinct conditions. Element itself
// carries no node-identity bookkeeping field (no node ID), so there is
// nothing "volatile" left to strip beyond what this writer already omits
// by only emitting fields relevant to Kind.
func Fingerprint(elements []Element) string {
	var b strings.Builder
	writeElements(&b, elements)
	return b.String()
}

func writeElements(b *strings.Builder, elements []Element) {
	b.WriteByte('[')
	for i, e := range elements {
		if i > 0 {
			b.WriteByte(',')
		}
		writeElement(b, e)
	}
	b.WriteByte(']')
}

func writeElement(b *strings.Builder, e Element) {
	b.WriteByte('{')
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case ElementContact:
		b.WriteByte(',')
		b.WriteString(e.Address)
		b.WriteByte(',')
		b.WriteString(strconv.FormatBool(e.Inverted))
		b.WriteByte(',')
		b.WriteString(string(e.Trigger))
	case ElementCoil, ElementCoilSet, ElementCoilRset:
		b.WriteByte(',')
		b.WriteString(e.Address)
		b.WriteByte(',')
		b.WriteString(strconv.FormatBool(e.Inverted))
	case ElementTimerTON, ElementTimerTOF, ElementTimerTP:
		b.WriteByte(',')
		b.WriteString(e.Address)
		b.WriteByte(',')
		b.WriteString(e.PresetDuration)
	case ElementCounterCTU, ElementCounterCTD, ElementCounterCTUD:
		b.WriteByte(',')
		b.WriteString(e.Address)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.PresetCount))
	case ElementMathAdd, ElementMathSub, ElementMathMul, ElementMathDiv, ElementMathMod,
		ElementMathNeg, ElementMathAbs, ElementInc, ElementDec:
		b.WriteByte(',')
		b.WriteString(string(e.DataType))
		b.WriteByte(',')
		b.WriteString(e.Address)
		b.WriteByte(',')
		b.WriteString(e.In1)
		b.WriteByte(',')
		b.WriteString(e.In2)
		b.WriteByte(',')
		b.WriteString(e.Out)
	case ElementCompareEQ, ElementCompareNEQ, ElementCompareGT, ElementCompareLT,
		ElementCompareGTE, ElementCompareLTE:
		b.WriteByte(',')
		b.WriteString(string(e.DataType))
		b.WriteByte(',')
		b.WriteString(e.In1)
		b.WriteByte(',')
		b.WriteString(e.In2)
	case ElementMove:
		b.WriteByte(',')
		b.WriteString(string(e.DataType))
		b.WriteByte(',')
		b.WriteString(e.In1)
		b.WriteByte(',')
		b.WriteString(e.Out)
	case ElementOr:
		b.WriteByte(',')
		b.WriteByte('[')
		for i, branch := range e.Branches {
			if i > 0 {
				b.WriteByte('|')
			}
			writeElements(b, branch.Elements)
		}
		b.WriteByte(']')
	case ElementTap:
		// No further fields.
	}

	b.WriteByte('}')
}

// Equal reports whether two elements are structurally equal for the
// purposes of common-prefix factoring: same fingerprint.
func Equal(a, b Element) bool {
	var ba, bb strings.Builder
	writeElement(&ba, a)
	writeElement(&bb, b)
	return ba.String() == bb.String()
}
