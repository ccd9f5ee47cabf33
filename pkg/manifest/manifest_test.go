package manifest

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rows := []Row{
		{TeamNumber: "1", TeamName: "Fancy Guys", TeamShortName: "FAGU", ImageFileName: "1.png", TeamColor: "AA3311FF"},
		{TeamNumber: "2", TeamName: "Team, Inc.", TeamShortName: "TEAM", ImageFileName: "2.png", TeamColor: "0055CCFF"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"1", "Fancy Guys", "FAGU", "1.png", "AA3311FF"}, records[1])
	// Commas in names survive the round trip.
	assert.Equal(t, "Team, Inc.", records[2][1])
}

func TestWriteEmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	assert.Equal(t, "TeamNumber,TeamName,TeamShortName,ImageFileName,TeamColor", strings.TrimSpace(buf.String()))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TeamInfo.csv")
	rows := []Row{{TeamNumber: "5", TeamName: "Eagles", TeamShortName: "EAGL", ImageFileName: "5.png", TeamColor: "112233FF"}}

	require.NoError(t, WriteFile(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "5,Eagles,EAGL,5.png,112233FF")
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "TeamInfo.csv"), nil)
	assert.Error(t, err)
}
