package ir

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/plcgo/ladderc/ladder"
)

// wireElement is Element's on-the-wire shape: every field optional, pruned
// down to exactly what Kind calls for before marshaling. Kept separate from
// Element itself so the in-memory type can use Go-native field types
// (ladder.Trigger, int preset counts) while the wire shape matches §6
// byte-for-byte, including the "preset" field's split string/integer type
// between timers and counters.
type wireElement struct {
	Kind     ElementKind `json:"kind"`
	Address  string      `json:"address,omitempty"`
	Inverted *bool       `json:"inverted,omitempty"`
	Trigger  string      `json:"trigger,omitempty"`
	Preset   any         `json:"preset,omitempty"`
	DataType string      `json:"data_type,omitempty"`
	In1      string      `json:"in1,omitempty"`
	In2      string      `json:"in2,omitempty"`
	Out      string      `json:"out,omitempty"`
	Branches []Branch    `json:"branches,omitempty"`
}

// MarshalJSON emits the §6 per-kind shape: only the fields that kind
// defines, nothing else.
func (e Element) MarshalJSON() ([]byte, error) {
	w := wireElement{Kind: e.Kind}

	switch e.Kind {
	case ElementContact:
		w.Address = e.Address
		w.Inverted = &e.Inverted
		w.Trigger = string(e.Trigger)
	case ElementCoil, ElementCoilSet, ElementCoilRset:
		w.Address = e.Address
		w.Inverted = &e.Inverted
	case ElementTimerTON, ElementTimerTOF, ElementTimerTP:
		w.Address = e.Address
		w.Preset = e.PresetDuration
	case ElementCounterCTU, ElementCounterCTD, ElementCounterCTUD:
		w.Address = e.Address
		w.Preset = e.PresetCount
	case ElementMathAdd, ElementMathSub, ElementMathMul, ElementMathDiv, ElementMathMod,
		ElementMathNeg, ElementMathAbs, ElementInc, ElementDec:
		w.DataType = string(e.DataType)
		w.Address = e.Address
		w.In1 = e.In1
		w.In2 = e.In2
		w.Out = e.Out
	case ElementCompareEQ, ElementCompareNEQ, ElementCompareGT, ElementCompareLT,
		ElementCompareGTE, ElementCompareLTE:
		w.DataType = string(e.DataType)
		w.In1 = e.In1
		w.In2 = e.In2
	case ElementMove:
		w.DataType = string(e.DataType)
		w.In1 = e.In1
		w.Out = e.Out
	case ElementOr:
		w.Branches = e.Branches
	case ElementTap:
		// No fields beyond kind.
	default:
		return nil, fmt.Errorf("ir: unknown element kind %q", e.Kind)
	}

	return json.Marshal(w)
}

// UnmarshalJSON parses the §6 per-kind shape back into Element, choosing
// which of PresetDuration/PresetCount to populate based on the decoded Kind.
func (e *Element) UnmarshalJSON(data []byte) error {
	var w wireElement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*e = Element{
		Kind:     w.Kind,
		Address:  w.Address,
		Inverted: w.Inverted != nil && *w.Inverted,
		Trigger:  ladder.Trigger(w.Trigger),
		DataType: ladder.DataType(w.DataType),
		In1:      w.In1,
		In2:      w.In2,
		Out:      w.Out,
		Branches: w.Branches,
	}

	switch w.Kind {
	case ElementTimerTON, ElementTimerTOF, ElementTimerTP:
		if s, ok := w.Preset.(string); ok {
			e.PresetDuration = s
		}
	case ElementCounterCTU, ElementCounterCTD, ElementCounterCTUD:
		switch v := w.Preset.(type) {
		case float64:
			e.PresetCount = int(v)
		case int:
			e.PresetCount = v
		}
	}

	return nil
}

// Marshal encodes an Output as the §6 JSON record.
func Marshal(out *Output) ([]byte, error) {
	return json.MarshalIndent(out, "", "  ")
}

// unmarshal decodes an Output from its JSON body; used by ReadFramed once it
// has isolated the bytes between the block markers.
func unmarshal(data []byte, out *Output) error {
	return json.Unmarshal(data, out)
}
