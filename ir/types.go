// Package ir defines the compiler's output data model (§6): a Rung/Element
// tagged union, the diagnostics envelope, and the JSON wire encoding used to
// serialize it.
//
// Element is modeled the way the ladder package models Node — one flat
// struct carrying every variant's fields, discriminated by Kind — rather
// than an interface-per-variant hierarchy: a closed set of kinds is better
// served by a single comparable struct than by a type switch over
// interfaces. Encoding to the exact per-kind JSON shape §6 specifies is
// handled by Element's custom MarshalJSON/UnmarshalJSON in json.go.
package ir

import "github.com/plcgo/ladderc/ladder"

// ElementKind is the closed set of wire element kinds (§6).
type ElementKind string

const (
	ElementContact ElementKind = "contact"

	ElementCoil     ElementKind = "coil"
	ElementCoilSet  ElementKind = "coil_set"
	ElementCoilRset ElementKind = "coil_rset"

	ElementTimerTON ElementKind = "timer_ton"
	ElementTimerTOF ElementKind = "timer_tof"
	ElementTimerTP  ElementKind = "timer_tp"

	ElementCounterCTU  ElementKind = "counter_ctu"
	ElementCounterCTD  ElementKind = "counter_ctd"
	ElementCounterCTUD ElementKind = "counter_ctud"

	ElementMathAdd ElementKind = "math_add"
	ElementMathSub ElementKind = "math_sub"
	ElementMathMul ElementKind = "math_mul"
	ElementMathDiv ElementKind = "math_div"
	ElementMathMod ElementKind = "math_mod"
	ElementMathNeg ElementKind = "math_neg"
	ElementMathAbs ElementKind = "math_abs"
	ElementInc     ElementKind = "inc"
	ElementDec     ElementKind = "dec"

	ElementCompareEQ  ElementKind = "compare_eq"
	ElementCompareNEQ ElementKind = "compare_neq"
	ElementCompareGT  ElementKind = "compare_gt"
	ElementCompareLT  ElementKind = "compare_lt"
	ElementCompareGTE ElementKind = "compare_gte"
	ElementCompareLTE ElementKind = "compare_lte"

	ElementMove ElementKind = "move"

	ElementOr  ElementKind = "or"
	ElementTap ElementKind = "tap"
)

// kindWire maps a ladder.Kind to its wire ElementKind. Only kinds that ever
// become a leaf element (actions, compare FBs, and — via their own terminal
// rule — timers/counters) appear here; contacts are handled separately since
// a contact's wire kind is always "contact" regardless of ladder.Kind.
var kindWire = map[ladder.Kind]ElementKind{
	ladder.KindCoil:     ElementCoil,
	ladder.KindCoilSet:  ElementCoilSet,
	ladder.KindCoilRset: ElementCoilRset,

	ladder.KindTimerTON: ElementTimerTON,
	ladder.KindTimerTOF: ElementTimerTOF,
	ladder.KindTimerTP:  ElementTimerTP,

	ladder.KindCounterCTU:  ElementCounterCTU,
	ladder.KindCounterCTD:  ElementCounterCTD,
	ladder.KindCounterCTUD: ElementCounterCTUD,

	ladder.KindMathAdd: ElementMathAdd,
	ladder.KindMathSub: ElementMathSub,
	ladder.KindMathMul: ElementMathMul,
	ladder.KindMathDiv: ElementMathDiv,
	ladder.KindMathMod: ElementMathMod,
	ladder.KindMathNeg: ElementMathNeg,
	ladder.KindMathAbs: ElementMathAbs,
	ladder.KindInc:     ElementInc,
	ladder.KindDec:     ElementDec,

	ladder.KindCompareEQ:  ElementCompareEQ,
	ladder.KindCompareNEQ: ElementCompareNEQ,
	ladder.KindCompareGT:  ElementCompareGT,
	ladder.KindCompareLT:  ElementCompareLT,
	ladder.KindCompareGTE: ElementCompareGTE,
	ladder.KindCompareLTE: ElementCompareLTE,

	ladder.KindMove: ElementMove,
}

// WireKind translates a ladder.Kind to its §6 output ElementKind. Contacts
// are not in the lookup table (their wire kind is always ElementContact);
// callers building a contact leaf should use ElementContact directly.
func WireKind(k ladder.Kind) ElementKind { return kindWire[k] }

// Branch is one arm of an "or" element: an ordered sub-expression.
type Branch struct {
	Elements []Element `json:"elements"`
}

// Element is one entry in a rung's condition/terminal list. Only the fields
// relevant to Kind are populated; MarshalJSON emits exactly the per-kind
// shape §6 specifies and nothing else.
type Element struct {
	Kind ElementKind

	// Address names a memory location; used by contact/coil/timer/counter
	// kinds and by the address? field math/inc/dec permit.
	Address string
	// Inverted applies to contact and coil kinds.
	Inverted bool
	// Trigger applies to contact kind; zero value TriggerNormal.
	Trigger ladder.Trigger

	// PresetDuration carries a timer's "T#…" string; PresetCount carries a
	// counter's integer preset. Exactly one is meaningful, chosen by Kind.
	PresetDuration string
	PresetCount    int

	// DataType, In1, In2, Out apply to math/compare/move kinds.
	DataType ladder.DataType
	In1      string
	In2      string
	Out      string

	// Branches applies only to ElementOr.
	Branches []Branch
}

// Rung is one emitted rung: a shared driving condition followed by the
// terminal elements it gates.
type Rung struct {
	Comment  string    `json:"comment"`
	Elements []Element `json:"elements"`
}

// Diagnostic mirrors diag.Entry's wire shape (§6: "{severity, message,
// node_ids}"). compile constructs these directly from diag.Entry values.
type Diagnostic struct {
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	NodeIDs  []string `json:"node_ids"`
}

// Output is the compiler's top-level result (§6).
type Output struct {
	Rungs  []Rung       `json:"rungs"`
	Errors []Diagnostic `json:"errors"`
}
