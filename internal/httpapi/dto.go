// Package httpapi exposes the compiler over HTTP: a gin router with one
// POST /compile endpoint, request bodies validated with
// go-playground/validator before ever touching the ladder package.
package httpapi

import (
	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	"github.com/plcgo/ladderc/ladder"
)

// nodeRequest is the wire shape of one ladder.Node, decoupled from the
// domain type so HTTP-layer concerns (json tags, validation tags) never
// leak into ladder — the same separation a domain Vertex/Edge type keeps
// from the option-based construction that builds it.
//
// Kind/Trigger/DataType each carry a "oneof" validate tag enumerating
// ladder's closed set for that field (Kind's list also includes the legacy
// "counter_u"/"counter_d" aliases ladder.ParseCounterKind still accepts), so
// an unrecognized value is rejected at the HTTP boundary instead of
// surfacing later as a diag.KindUnknownKind diagnostic. A struct tag can't
// reference a Go constant, so these lists are kept in sync with
// ladder.allKinds/Trigger/DataType by hand.
type nodeRequest struct {
	ID       string `json:"id" validate:"required"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
	Kind     string `json:"kind" validate:"required,oneof=contact coil coil_set coil_rset timer_ton timer_tof timer_tp counter_ctu counter_ctd counter_ctud counter_u counter_d fb_add fb_sub fb_mul fb_div fb_mod fb_neg fb_abs fb_inc fb_dec fb_eq fb_neq fb_gt fb_lt fb_gte fb_lte fb_move"`
	Inverted bool   `json:"inverted"`
	Trigger  string `json:"trigger" validate:"omitempty,oneof=normal rising falling change"`
	Preset   string `json:"preset"`
	DataType string `json:"data_type" validate:"omitempty,oneof=i8 u8 i16 u16 i32 u32 i64 u64 f32 f64"`
	In1      string `json:"in1"`
	In2      string `json:"in2"`
	Out      string `json:"out"`
	Symbol   string `json:"symbol"`
}

type connectionRequest struct {
	ID   string `json:"id" validate:"required"`
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// compileRequest is the POST /compile body.
type compileRequest struct {
	Name    string              `json:"name"`
	Comment string              `json:"comment"`
	Nodes   []nodeRequest       `json:"nodes" validate:"dive"`
	Wires   []connectionRequest `json:"wires" validate:"dive"`
}

// toLadder converts a validated compileRequest into the domain type. Counter
// kind aliases are normalized via ladder.ParseCounterKind, matching the
// same decode-time normalization any other serialization path would need.
func (r compileRequest) toLadder() *ladder.Ladder {
	l := &ladder.Ladder{
		Name:    r.Name,
		Comment: r.Comment,
		Nodes:   make([]ladder.Node, len(r.Nodes)),
		Wires:   make([]ladder.Connection, len(r.Wires)),
	}

	for i, n := range r.Nodes {
		l.Nodes[i] = ladder.Node{
			ID:       n.ID,
			X:        n.X,
			Y:        n.Y,
			Kind:     ladder.ParseCounterKind(n.Kind),
			Inverted: n.Inverted,
			Trigger:  ladder.Trigger(n.Trigger),
			Preset:   n.Preset,
			DataType: ladder.DataType(n.DataType),
			In1:      n.In1,
			In2:      n.In2,
			Out:      n.Out,
			Symbol:   n.Symbol,
		}
	}
	for i, w := range r.Wires {
		l.Wires[i] = ladder.Connection{ID: w.ID, From: w.From, To: w.To}
	}

	return l
}

// DecodeLadder parses raw as a compileRequest JSON document, validates it,
// and converts it to a ladder.Ladder. Shared by the HTTP handler and the
// CLI's "compile"/"watch" subcommands so both front ends accept exactly the
// same wire format.
func DecodeLadder(raw []byte) (*ladder.Ladder, error) {
	var req compileRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(req); err != nil {
		return nil, err
	}
	return req.toLadder(), nil
}
