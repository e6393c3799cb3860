package diag

import (
	"strconv"

	"github.com/plcgo/ladderc/ladder"
)

// CollectPresetErrors validates every timer's duration string against the
// §6 grammar and every counter's preset against a plain integer, recording a
// KindInvalidPreset error per violation rather than stopping at the first.
func CollectPresetErrors(c *Collector, l *ladder.Ladder) {
	for _, n := range l.Nodes {
		switch {
		case n.IsTimer():
			if _, err := ladder.ParsePreset(n.Preset); err != nil {
				c.Error(KindInvalidPreset, []string{n.ID}, "%v", err)
			}
		case n.IsCounter():
			if _, err := strconv.Atoi(n.Preset); err != nil {
				c.Error(KindInvalidPreset, []string{n.ID}, "counter %q has non-integer preset %q", n.ID, n.Preset)
			}
		}
	}
}
