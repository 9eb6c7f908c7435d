// Package task models the pieces of geralt's rendered output this tool
// understands: integer task ids, completion states, and the line grammar
// used to recover both from a rendered buffer line.
package task

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ID identifies a task inside the geralt store. The value is owned by
// geralt; this tool only carries it between rendered text and argv.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// ParseID parses a decimal task id as geralt prints it.
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("task: bad id %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("task: bad id %q", s)
	}
	return ID(n), nil
}

// State is the completion state of a task as encoded by its marker.
type State int

const (
	Inactive State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "inactive"
	}
}

// Marker returns the bracketed form geralt renders for the state.
func (s State) Marker() string {
	switch s {
	case InProgress:
		return "[~]"
	case Completed:
		return "[x]"
	default:
		return "[ ]"
	}
}

// ErrNoStateMarker reports a line with no recognizable completion marker.
// Callers must resolve an id first and only ask for state on task lines.
var ErrNoStateMarker = errors.New("task: no state marker on line")

var (
	// A task reference is "(<id>)" or "(<id>:<alias>)". The alias match
	// stops at the first ')', so aliases containing ')' or nested parens
	// can resolve to the wrong group. That imprecision matches what
	// geralt guarantees about its output, which is nothing.
	groupRe = regexp.MustCompile(`\((\d+)(?::[^)]*)?\)`)

	stateRe = regexp.MustCompile(`\[([ ~x*])\]`)
)

// ResolveID recovers the task id denoted by line at the given column.
// It picks the nearest group starting at or before col, falling back to
// the first group on the line, so the cursor can sit anywhere on a task
// line. ok is false for header and separator lines.
func ResolveID(line string, col int) (ID, bool) {
	matches := groupRe.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return 0, false
	}
	if col > len(line) {
		col = len(line)
	}
	pick := matches[0]
	for _, m := range matches {
		if m[0] <= col {
			pick = m
		}
	}
	n, err := strconv.Atoi(line[pick[2]:pick[3]])
	if err != nil {
		return 0, false
	}
	return ID(n), true
}

// ResolveState maps the first completion marker on the line to a State.
// 'x' and '*' are synonyms for completed.
func ResolveState(line string) (State, error) {
	m := stateRe.FindStringSubmatch(line)
	if m == nil {
		return Inactive, ErrNoStateMarker
	}
	switch m[1] {
	case "~":
		return InProgress, nil
	case "x", "*":
		return Completed, nil
	default:
		return Inactive, nil
	}
}

// IsHeader reports whether line is a section header in rendered output.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, "* ")
}
