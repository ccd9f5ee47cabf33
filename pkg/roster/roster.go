// Package roster loads the tournament slot roster (Slots.txt).
//
// The roster is a line-oriented file with one team per non-empty line:
//
//	1. Fancy Guys
//	2. Team Eagle
//
// The first whitespace-separated field is the slot number (a trailing period
// is tolerated), the remainder of the line is the team name. Malformed lines
// are skipped with a warning rather than failing the whole load.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// Team is one roster entry. Number is kept as a string: slot numbers are
// labels used in file names and the CSV, never arithmetic operands.
type Team struct {
	Number string
	Name   string
}

// Roster is an ordered list of teams as they appear in the slots file.
type Roster struct {
	Teams []Team

	// Skipped counts malformed lines dropped during parsing.
	Skipped int
}

// Names returns the team names in roster order, the shape the short-name
// resolver consumes.
func (r *Roster) Names() []string {
	names := make([]string, len(r.Teams))
	for i, t := range r.Teams {
		names[i] = t.Name
	}
	return names
}

// Parse reads a roster from r. Empty lines are ignored; lines without both a
// slot number and a name are counted in Skipped and logged at warn level.
func Parse(r io.Reader, logger *log.Logger) (*Roster, error) {
	roster := &Roster{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cut := strings.IndexFunc(line, unicode.IsSpace)
		if cut < 0 {
			logger.Warnf("Skipping invalid roster line: %s", line)
			roster.Skipped++
			continue
		}
		number := line[:cut]
		name := strings.TrimSpace(line[cut:])
		if name == "" {
			logger.Warnf("Skipping invalid roster line: %s", line)
			roster.Skipped++
			continue
		}

		roster.Teams = append(roster.Teams, Team{
			Number: strings.TrimSuffix(number, "."),
			Name:   name,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return roster, nil
}

// Load reads a roster file from path.
func Load(path string, logger *log.Logger) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, logger)
}
