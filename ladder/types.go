// Package ladder defines the Block/Connection data model for a two-dimensional
// PLC ladder diagram: typed Node records placed on an integer grid, directed
// Connection records wiring them together, and the Ladder container that
// holds both plus the rung-naming strings.
//
// The model is immutable from the compiler's perspective: nothing in this
// repository ever mutates a Node, Connection, or Ladder after construction.
package ladder

import "errors"

// Sentinel errors surfaced by the ladder package's validation helpers.
var (
	// ErrEmptyNodeID indicates a Node with an empty ID.
	ErrEmptyNodeID = errors.New("ladder: node ID is empty")

	// ErrNegativeCoordinate indicates a Node with x<0 or y<0.
	ErrNegativeCoordinate = errors.New("ladder: grid coordinate must be >= 0")

	// ErrUnknownKind indicates a Kind string outside the closed set this
	// package recognizes.
	ErrUnknownKind = errors.New("ladder: unknown node kind")

	// ErrDuplicateNodeID indicates two nodes in one Ladder share an ID (I1).
	ErrDuplicateNodeID = errors.New("ladder: duplicate node ID")

	// ErrDanglingConnection indicates a Connection referencing a node ID
	// absent from the Ladder's node list (I2).
	ErrDanglingConnection = errors.New("ladder: connection references unknown node")

	// ErrBackwardConnection indicates a Connection whose source x is not
	// strictly less than its destination x (W1).
	ErrBackwardConnection = errors.New("ladder: connection violates left-to-right direction (W1)")
)

// Trigger selects the edge-detection mode of a contact.
type Trigger string

const (
	TriggerNormal  Trigger = "normal"
	TriggerRising  Trigger = "rising"
	TriggerFalling Trigger = "falling"
	TriggerChange  Trigger = "change"
)

// DataType is the closed set of scalar types a function block operates on.
type DataType string

const (
	DataI8  DataType = "i8"
	DataU8  DataType = "u8"
	DataI16 DataType = "i16"
	DataU16 DataType = "u16"
	DataI32 DataType = "i32"
	DataU32 DataType = "u32"
	DataI64 DataType = "i64"
	DataU64 DataType = "u64"
	DataF32 DataType = "f32"
	DataF64 DataType = "f64"
)

// Kind is the closed set of block kinds a Node may carry. It is a tagged
// enumeration (a sum type in spirit): every kind predicate in this package
// collapses to a single comparison against this string, rather than a
// scatter of type assertions.
type Kind string

// Leaf kinds.
const (
	KindContact Kind = "contact"

	KindCoil     Kind = "coil"
	KindCoilSet  Kind = "coil_set"
	KindCoilRset Kind = "coil_rset"

	KindTimerTON Kind = "timer_ton"
	KindTimerTOF Kind = "timer_tof"
	KindTimerTP  Kind = "timer_tp"

	// Canonical counter spellings. ParseCounterKind normalizes the legacy
	// "counter_u"/"counter_d" aliases to these at the decode boundary, so
	// every downstream component only ever sees the three canonical forms.
	KindCounterCTU  Kind = "counter_ctu"
	KindCounterCTD  Kind = "counter_ctd"
	KindCounterCTUD Kind = "counter_ctud"
)

// Function block kinds, partitioned by sub-family per §3.
const (
	KindMathAdd Kind = "fb_add"
	KindMathSub Kind = "fb_sub"
	KindMathMul Kind = "fb_mul"
	KindMathDiv Kind = "fb_div"
	KindMathMod Kind = "fb_mod"

	KindMathNeg Kind = "fb_neg"
	KindMathAbs Kind = "fb_abs"

	KindInc Kind = "fb_inc"
	KindDec Kind = "fb_dec"

	KindCompareEQ  Kind = "fb_eq"
	KindCompareNEQ Kind = "fb_neq"
	KindCompareGT  Kind = "fb_gt"
	KindCompareLT  Kind = "fb_lt"
	KindCompareGTE Kind = "fb_gte"
	KindCompareLTE Kind = "fb_lte"

	KindMove Kind = "fb_move"
)

// legacy counter aliases accepted (and normalized away) at decode time.
const (
	legacyCounterUp   = "counter_u"
	legacyCounterDown = "counter_d"
)

// allKinds is the closed set used by ValidKind; kept as a map for O(1)
// membership instead of a long if/else chain.
var allKinds = map[Kind]struct{}{
	KindContact: {}, KindCoil: {}, KindCoilSet: {}, KindCoilRset: {},
	KindTimerTON: {}, KindTimerTOF: {}, KindTimerTP: {},
	KindCounterCTU: {}, KindCounterCTD: {}, KindCounterCTUD: {},
	KindMathAdd: {}, KindMathSub: {}, KindMathMul: {}, KindMathDiv: {}, KindMathMod: {},
	KindMathNeg: {}, KindMathAbs: {}, KindInc: {}, KindDec: {},
	KindCompareEQ: {}, KindCompareNEQ: {}, KindCompareGT: {}, KindCompareLT: {},
	KindCompareGTE: {}, KindCompareLTE: {}, KindMove: {},
}

// ValidKind reports whether k belongs to the closed kind set.
func ValidKind(k Kind) bool {
	_, ok := allKinds[k]
	return ok
}

// ParseCounterKind normalizes a raw counter kind string, accepting the
// legacy short aliases "counter_u"/"counter_d" and the canonical
// "counter_ctu"/"counter_ctd"/"counter_ctud" spellings, and returning the
// canonical Kind. Any other input is returned unchanged (callers validate
// the result with ValidKind).
func ParseCounterKind(raw string) Kind {
	switch raw {
	case legacyCounterUp:
		return KindCounterCTU
	case legacyCounterDown:
		return KindCounterCTD
	default:
		return Kind(raw)
	}
}

// Node is one block in the ladder diagram.
type Node struct {
	ID string
	X  int
	Y  int
	Kind Kind

	// Inverted applies to contacts and coils.
	Inverted bool
	// Trigger applies to contacts; zero value TriggerNormal.
	Trigger Trigger

	// Preset is the raw timer duration string ("T#500ms") or counter integer
	// preset, carried as a string so the model stays kind-agnostic; use
	// ParsePreset for timers and strconv.Atoi for counters.
	Preset string

	// DataType applies to function blocks.
	DataType DataType
	// In1, In2, Out name the operands/result of a function block.
	In1 string
	In2 string
	Out string

	// Symbol names a memory address. Opaque to this compiler: resolving a
	// short code to a physical memory location is a concern of the runtime
	// that loads the emitted IR, not of compilation.
	Symbol string
}

// Connection is a directed wire: power flows From -> To.
type Connection struct {
	ID   string
	From string
	To   string
}

// Ladder is the compiler's input: an ordered node list, an ordered
// connection list, and naming strings used for rung labels.
type Ladder struct {
	Name    string
	Comment string
	Nodes   []Node
	Wires   []Connection
}

// RungLabel returns Comment if non-empty, else Name, per §4.H.
func (l *Ladder) RungLabel() string {
	if l.Comment != "" {
		return l.Comment
	}
	return l.Name
}
