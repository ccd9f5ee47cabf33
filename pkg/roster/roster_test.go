package roster

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestParse(t *testing.T) {
	input := `1. Fancy Guys
2. Team Eagle

3. Blue Dragons
`
	r, err := Parse(strings.NewReader(input), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []Team{
		{Number: "1", Name: "Fancy Guys"},
		{Number: "2", Name: "Team Eagle"},
		{Number: "3", Name: "Blue Dragons"},
	}, r.Teams)
	assert.Zero(t, r.Skipped)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	input := "1. Fancy Guys\njustoneword\n2. Team Eagle\n"

	r, err := Parse(strings.NewReader(input), discardLogger())
	require.NoError(t, err)

	require.Len(t, r.Teams, 2)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, "Fancy Guys", r.Teams[0].Name)
	assert.Equal(t, "Team Eagle", r.Teams[1].Name)
}

func TestParseKeepsNumberWithoutPeriod(t *testing.T) {
	r, err := Parse(strings.NewReader("12 No Dot Team\n"), discardLogger())
	require.NoError(t, err)

	require.Len(t, r.Teams, 1)
	assert.Equal(t, "12", r.Teams[0].Number)
	assert.Equal(t, "No Dot Team", r.Teams[0].Name)
}

func TestParseTabSeparated(t *testing.T) {
	r, err := Parse(strings.NewReader("4.\tTabbed Team\n"), discardLogger())
	require.NoError(t, err)

	require.Len(t, r.Teams, 1)
	assert.Equal(t, "4", r.Teams[0].Number)
	assert.Equal(t, "Tabbed Team", r.Teams[0].Name)
}

func TestNames(t *testing.T) {
	r := &Roster{Teams: []Team{{Number: "1", Name: "A"}, {Number: "2", Name: "B"}}}
	assert.Equal(t, []string{"A", "B"}, r.Names())
}

func TestParseEmpty(t *testing.T) {
	r, err := Parse(strings.NewReader(""), discardLogger())
	require.NoError(t, err)
	assert.Empty(t, r.Teams)
}
