package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

func newTestLoader(t *testing.T) Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, "top_hat", KeyFromName("Top Hat"))
	assert.Equal(t, "thinking_cap", KeyFromName("  Thinking   Cap! "))
	assert.Equal(t, "creme_brulee", KeyFromName("Crème Brûlée"))
}

func TestLoader_ParseDerivesKeysAndNames(t *testing.T) {
	l := newTestLoader(t)
	config, err := l.Parse("inline", []byte(`{
		"items": [
			{"name": "Gold Star", "droppable": true, "rarity": 2},
			{"key": "party_hat", "is_hat": true}
		]
	}`))
	require.NoError(t, err)

	items := config.DomainItems()
	require.Len(t, items, 2)
	assert.Equal(t, domain.Item{Key: "gold_star", Name: "Gold Star", Droppable: true, Rarity: 2}, items[0])
	assert.Equal(t, "Party Hat", items[1].Name)
	assert.True(t, items[1].IsHat)
}

func TestLoader_ParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"schema: no items", `{"items": []}`, ErrMsgSchemaInvalid},
		{"schema: bad key", `{"items": [{"key": "Top Hat"}]}`, ErrMsgSchemaInvalid},
		{"schema: unknown field", `{"items": [{"key": "a", "price": 3}]}`, ErrMsgSchemaInvalid},
		{"schema: negative rarity", `{"items": [{"key": "a", "rarity": -1}]}`, ErrMsgSchemaInvalid},
		{"duplicate key", `{"items": [{"key": "pencil"}, {"name": "Pencil"}]}`, "duplicate item key"},
		{"droppable without rarity", `{"items": [{"key": "pencil", "droppable": true}]}`, "positive rarity"},
		{"name slugs to nothing", `{"items": [{"name": "!!!"}]}`, "neither key nor name"},
	}

	l := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse("inline", []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoader_Validate(t *testing.T) {
	l := newTestLoader(t)
	assert.ErrorIs(t, l.Validate(nil), ErrInvalidConfig)
	assert.ErrorIs(t, l.Validate(&Config{}), ErrInvalidConfig)
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "Crown", "is_hat": true}]}`), 0o600))

	config, err := newTestLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "crown", config.Items[0].Key)

	_, err = newTestLoader(t).Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoader_DefaultCatalogIsValid(t *testing.T) {
	config, err := newTestLoader(t).Load(filepath.Join("..", "..", "configs", "items.json"))
	require.NoError(t, err)

	keys := map[string]bool{}
	for _, item := range config.DomainItems() {
		keys[item.Key] = true
	}
	for _, key := range []string{domain.ItemTopHat, domain.ItemCrown, domain.ItemPencil, domain.ItemEraser, domain.ItemPartyHat, domain.ItemThinkCap} {
		assert.True(t, keys[key], "missing %s", key)
	}
}
