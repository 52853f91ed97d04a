// Package parser turns raw input lines into command invocations. A line is a
// command when it starts with the marker character; everything else is free
// text handled by the caller.
package parser

import (
	"fmt"
	"strings"
)

// Marker is the leading character identifying a line as a command.
const Marker = "/"

// Command is a parsed command invocation: a lowercased name and its
// whitespace-delimited argument tokens. It is immutable once parsed.
type Command struct {
	Name string
	Args []string
}

// IsCommand reports whether the line starts with the marker character after
// trimming surrounding whitespace.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), Marker)
}

// ParseCommand parses a marker-prefixed line into a Command. The first token
// after the marker is the command name (matched case-insensitively), the rest
// are arguments.
func ParseCommand(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, Marker) {
		return nil, fmt.Errorf("command must start with %q", Marker)
	}

	// Remove the leading marker
	input = input[len(Marker):]

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	return &Command{
		Name: strings.ToLower(tokens[0]),
		Args: tokens[1:],
	}, nil
}

func (c *Command) String() string {
	result := Marker + c.Name
	if len(c.Args) > 0 {
		result += " " + strings.Join(c.Args, " ")
	}
	return result
}
