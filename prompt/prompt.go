// Package prompt holds the operating instructions given to the flight agent's model.
//
// The text is data: it tells the hosting runtime's model how to run the
// ReAct loop around the flight-search tool. Nothing here interprets it.
package prompt

import (
	_ "embed"
	"strings"
)

//go:embed flights_react.md
var system string

// System returns the full system prompt.
func System() string {
	return system
}

// Sections returns the prompt's level-2 headings in document order.
// Headings inside fenced code blocks are ignored.
func Sections() []string {
	var sections []string
	inFence := false
	for _, line := range strings.Split(system, "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if title, ok := strings.CutPrefix(line, "## "); ok {
			sections = append(sections, strings.TrimSpace(title))
		}
	}
	return sections
}
