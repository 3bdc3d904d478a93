package entities

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const fieldSeparator = ","

// RosterEntry is one roster row: a single student or a group of students.
// An empty entry keeps the position of a blank row.
type RosterEntry []string

// IsEmpty reports whether the row had no identities.
func (e RosterEntry) IsEmpty() bool { return len(e) == 0 }

// IsGroup reports whether the row names more than one student.
func (e RosterEntry) IsGroup() bool { return len(e) > 1 }

// Roster is the ordered list of rows read from the roster file.
type Roster []RosterEntry

// ReadRoster opens and parses the roster file at path.
func ReadRoster(path string) (Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer file.Close()

	roster, err := ParseRoster(file)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return roster, nil
}

// ParseRoster reads a headerless comma-separated roster, one team per line.
// Fields are trimmed and empty fields dropped; blank lines become empty entries.
// A final line break does not produce an extra entry.
func ParseRoster(reader io.Reader) (Roster, error) {
	roster := Roster{}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		roster = append(roster, parseRow(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return roster, nil
}

func parseRow(line string) RosterEntry {
	entry := RosterEntry{}
	for _, field := range strings.Split(line, fieldSeparator) {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			entry = append(entry, trimmed)
		}
	}
	return entry
}
