package ui

import (
	"fmt"

	"lastgol/internal/controller"
	"lastgol/internal/core"
)

// StatusLines flattens a snapshot into "Label: value" lines, one group after
// another.
func StatusLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range s.Groups {
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// HelpLines describes the key bindings valid in mode m.
func HelpLines(m controller.Mode) []string {
	var lines []string
	for _, b := range controller.Bindings {
		action := b.Free
		if m == controller.ModeStamp {
			action = b.Stamp
		}
		if action == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", b.Key, action))
	}
	return lines
}
