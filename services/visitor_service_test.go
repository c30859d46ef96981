package services

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ncinga/temi-event-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSubstringMatch(t *testing.T) {
	svc := NewVisitorService([]types.Visitor{
		{Name: "Alice"},
		{Name: "Bob"},
		{Name: "Alicia"},
	})

	results := svc.Search("ali")
	require.Len(t, results, 2)
	assert.Equal(t, "Alice", results[0].Name)
	assert.Equal(t, "Alicia", results[1].Name)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewVisitorService([]types.Visitor{{Name: "Alice"}})
	assert.Empty(t, svc.Search(""))
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc := NewVisitorService([]types.Visitor{{Name: "ALICE"}})
	assert.Len(t, svc.Search("alice"), 1)
	assert.Len(t, svc.Search("LICE"), 1)
}

func TestSearchCapsAtTwenty(t *testing.T) {
	visitors := make([]types.Visitor, 30)
	for i := range visitors {
		visitors[i] = types.Visitor{Name: fmt.Sprintf("Visitor %02d", i)}
	}
	svc := NewVisitorService(visitors)

	results := svc.Search("visitor")
	require.Len(t, results, 20)
	// dataset order is preserved
	assert.Equal(t, "Visitor 00", results[0].Name)
	assert.Equal(t, "Visitor 19", results[19].Name)
}

func TestSearchSkipsUnnamedEntries(t *testing.T) {
	svc := NewVisitorService([]types.Visitor{
		{Name: "", Email: "ghost@example.com"},
		{Name: "Alice"},
	})
	results := svc.Search("a")
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].Name)
}

func TestLoadVisitorServiceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Name":"Alice"},{"Name":"Bob"}]`), 0o600))

	svc := LoadVisitorService(path)
	assert.Equal(t, 2, svc.Count())
}

func TestLoadVisitorServiceMissingFile(t *testing.T) {
	svc := LoadVisitorService(filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, 0, svc.Count())
	assert.Empty(t, svc.Search("anything"))
}
