// Package diag implements the diagnostics collector (component D): an
// accumulator of structured errors/warnings keyed by node id. Unlike a
// sentinel-error catalogue returned one at a time, callers accumulate an
// Entry and keep going, since §7 requires the compiler to never abort on
// malformed input.
package diag

import "fmt"

// Severity classifies a diagnostic Entry.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind names the diagnostic category, per §7's taxonomy. Kinds are not error
// values — nothing in this package is ever returned as a Go error; an Entry
// is data, always collected into a Collector, never thrown.
type Kind string

const (
	KindEmptyLadder            Kind = "empty_ladder"
	KindNoWires                Kind = "no_wires"
	KindDisconnectedNode       Kind = "disconnected_node"
	KindDanglingAction         Kind = "dangling_action"
	KindUnreachableContactPath Kind = "unreachable_contact_path"
	KindInvalidPreset          Kind = "invalid_preset"
	KindCycleDetected          Kind = "cycle_detected"

	KindEmptyNodeID        Kind = "empty_node_id"
	KindNegativeCoordinate Kind = "negative_coordinate"
	KindUnknownKind        Kind = "unknown_kind"
	KindDuplicateNodeID    Kind = "duplicate_node_id"
	KindDanglingConnection Kind = "dangling_connection"
	KindBackwardWire       Kind = "backward_wire"
)

// Entry is one diagnostic record.
type Entry struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	NodeIDs  []string `json:"node_ids"`
	Kind     Kind     `json:"-"`
}

// Collector accumulates Entry values across one compile call. It is never
// shared across compiles (per-compile lifetime, mirroring the expression
// memo in synth — see §5).
type Collector struct {
	entries []Entry
}

// New returns an empty Collector.
func New() *Collector { return &Collector{} }

// Error records an error-severity entry.
func (c *Collector) Error(kind Kind, nodeIDs []string, format string, args ...any) {
	c.add(SeverityError, kind, nodeIDs, format, args...)
}

// Warning records a warning-severity entry.
func (c *Collector) Warning(kind Kind, nodeIDs []string, format string, args ...any) {
	c.add(SeverityWarning, kind, nodeIDs, format, args...)
}

func (c *Collector) add(sev Severity, kind Kind, nodeIDs []string, format string, args ...any) {
	c.entries = append(c.entries, Entry{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		NodeIDs:  append([]string(nil), nodeIDs...),
		Kind:     kind,
	})
}

// Entries returns the accumulated diagnostics in recording order.
func (c *Collector) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// HasErrors reports whether any SeverityError entry was recorded. The host
// treats this as a compile failure for UI purposes (§7) while the emitter
// still produces whatever rungs it can.
func (c *Collector) HasErrors() bool {
	for _, e := range c.entries {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
