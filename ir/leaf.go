package ir

import (
	"strconv"

	"github.com/plcgo/ladderc/ladder"
)

// LeafFromNode builds the wire element a single node contributes to a
// condition or terminal list. It does not decide role (pass-through
// suppression, tap insertion) — that is synth's job (§4.G); this is purely
// the Kind-to-fields translation §6 specifies.
//
// Counter presets that fail to parse as an integer (already flagged as a
// diag.KindInvalidPreset diagnostic upstream) degrade to a zero preset
// rather than panicking — the core never aborts on malformed input (§7).
func LeafFromNode(n *ladder.Node) Element {
	if n.IsContact() {
		return Element{
			Kind:     ElementContact,
			Address:  n.Symbol,
			Inverted: n.Inverted,
			Trigger:  triggerOrNormal(n.Trigger),
		}
	}

	if n.IsCounter() {
		count, _ := strconv.Atoi(n.Preset)
		return Element{
			Kind:        WireKind(n.Kind),
			Address:     n.Symbol,
			PresetCount: count,
		}
	}

	if n.IsTimer() {
		return Element{
			Kind:           WireKind(n.Kind),
			Address:        n.Symbol,
			PresetDuration: n.Preset,
		}
	}

	if n.IsCoil() {
		return Element{
			Kind:     WireKind(n.Kind),
			Address:  n.Symbol,
			Inverted: n.Inverted,
		}
	}

	if n.IsCompareFB() {
		return Element{
			Kind:     WireKind(n.Kind),
			DataType: n.DataType,
			In1:      n.In1,
			In2:      n.In2,
		}
	}

	if n.IsMove() {
		return Element{
			Kind:     WireKind(n.Kind),
			DataType: n.DataType,
			In1:      n.In1,
			Out:      n.Out,
		}
	}

	// Remaining family: math binary/unary and inc/dec.
	return Element{
		Kind:     WireKind(n.Kind),
		DataType: n.DataType,
		Address:  n.Symbol,
		In1:      n.In1,
		In2:      n.In2,
		Out:      n.Out,
	}
}

func triggerOrNormal(t ladder.Trigger) ladder.Trigger {
	if t == "" {
		return ladder.TriggerNormal
	}
	return t
}

// Tap returns the "tap" marker element appended after a tap-requiring
// action's own leaf.
func Tap() Element { return Element{Kind: ElementTap} }

// Or wraps factored branches in an "or" element.
func Or(branches []Branch) Element { return Element{Kind: ElementOr, Branches: branches} }
