package wificreds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTableJSON = `[
	{"name": "home", "ssid": "MyHomeWiFi", "password": "HomePassword123"},
	{"name": "office", "ssid": "OfficeNetwork", "password": "OfficePassword456"}
]`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(exampleTableJSON))

	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, CredentialSet{Name: "home", SSID: "MyHomeWiFi", Password: "HomePassword123"}, table[0])
	assert.Equal(t, "office", table[1].Name)
}

func TestParseTable_MalformedJSON(t *testing.T) {
	table, err := ParseTable([]byte(`{"name": "not an array"}`))

	assert.Nil(t, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse credential table")
}

func TestParseTable_EmptyArray(t *testing.T) {
	table, err := ParseTable([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, table)

	r := FromTable(table)
	assert.Zero(t, r.Count())
}

// Content problems (missing fields) are not loader errors; they surface
// through IsValid at query time.
func TestParseTable_MissingFieldsStillParse(t *testing.T) {
	table, err := ParseTable([]byte(`[{"name": "open", "ssid": "CafeGuest"}]`))

	require.NoError(t, err)
	r := FromTable(table)
	assert.Equal(t, 1, r.Count())
	assert.False(t, r.IsValid("open"))
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(exampleTableJSON), 0o600))

	table, err := LoadTable(path)

	require.NoError(t, err)
	r := FromTable(table)
	assert.Equal(t, 2, r.Count())

	name, ok := r.DefaultName()
	require.True(t, ok)
	assert.Equal(t, "home", name)
}

func TestLoadTable_MissingFile(t *testing.T) {
	table, err := LoadTable(filepath.Join(t.TempDir(), "nope.json"))

	assert.Nil(t, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read credential table")
}
