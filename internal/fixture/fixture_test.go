package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/metamock/pkg/types"
)

const sampleYAML = `items:
  Excalibur:
    material: diamond_sword
    display_name: Excalibur
    lore: ["Line1", "Line2"]
    damage: 5
    enchants:
      sharpness: 3
      "myplugin:tier.two": 1
  twin:
    lore: ["Line1", "Line2"]
  emptylore:
    lore: []
  plain: {}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	set, err := Load(writeFile(t, "fixtures.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"emptylore", "excalibur", "plain", "twin"}, set.Names())
	assert.Equal(t, 4, set.Len())

	item, err := set.Build("EXCALIBUR")
	require.NoError(t, err)
	assert.Equal(t, "excalibur", item.Name)
	assert.Equal(t, types.MaterialDiamondSword, item.Material)

	m := item.Meta
	assert.Equal(t, "Excalibur", m.GetDisplayName())
	m.AssertLore(t, "Line1", "Line2")
	assert.Equal(t, 5, m.GetDamage())
	assert.Equal(t, 3, m.GetEnchantLevel(types.EnchantmentSharpness))
	assert.Equal(t, 1, m.GetEnchantLevel(types.Enchantment("myplugin:tier.two")))
}

func TestLoadPresenceSemantics(t *testing.T) {
	set, err := Load(writeFile(t, "fixtures.yaml", sampleYAML))
	require.NoError(t, err)

	plain, err := set.Build("plain")
	require.NoError(t, err)
	assert.False(t, plain.Meta.HasDisplayName())
	assert.False(t, plain.Meta.HasLore())
	assert.Equal(t, DefaultMaterial, plain.Material)

	empty, err := set.Build("emptylore")
	require.NoError(t, err)
	assert.True(t, empty.Meta.HasLore(), "explicit empty list is set lore")
	assert.NoError(t, empty.Meta.CheckNoLore())
	assert.False(t, empty.Meta.Equal(plain.Meta))
}

func TestBuildEqualitySemantics(t *testing.T) {
	set, err := Load(writeFile(t, "fixtures.yaml", sampleYAML))
	require.NoError(t, err)

	sword, err := set.Build("excalibur")
	require.NoError(t, err)
	twin, err := set.Build("twin")
	require.NoError(t, err)

	assert.False(t, sword.Meta.Equal(twin.Meta), "display names differ")
	twin.Meta.SetDisplayName("Excalibur")
	assert.True(t, sword.Meta.Equal(twin.Meta), "damage and enchants do not count")
	assert.Equal(t, sword.Meta.Hash(), twin.Meta.Hash())
}

func TestBuildReturnsIndependentRecords(t *testing.T) {
	set, err := Load(writeFile(t, "fixtures.yaml", sampleYAML))
	require.NoError(t, err)

	a, err := set.Build("twin")
	require.NoError(t, err)
	b, err := set.Build("twin")
	require.NoError(t, err)

	a.Meta.SetLore([]string{"changed"})
	b.Meta.AssertLore(t, "Line1", "Line2")
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "fixtures.json", `{"items": {"bow": {"display_name": "Bow", "enchants": {"power": 2}}}}`)

	set, err := Load(path)
	require.NoError(t, err)

	item, err := set.Build("bow")
	require.NoError(t, err)
	assert.Equal(t, "Bow", item.Meta.GetDisplayName())
	assert.Equal(t, 2, item.Meta.GetEnchantLevel(types.EnchantmentPower))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "negative damage",
			content: "items:\n  sword:\n    damage: -1\n",
			wantErr: ErrInvalidFixture,
			wantMsg: "Damage must be >= 0",
		},
		{
			name:    "bad enchantment key",
			content: "items:\n  sword:\n    enchants:\n      \"fire aspect\": 1\n",
			wantErr: ErrInvalidFixture,
			wantMsg: "is not an enchantment key",
		},
		{
			name:    "zero enchantment level",
			content: "items:\n  sword:\n    enchants:\n      sharpness: 0\n",
			wantErr: ErrInvalidFixture,
			wantMsg: "must be >= 1",
		},
		{
			name:    "bad material",
			content: "items:\n  sword:\n    material: \"diamond sword\"\n",
			wantErr: ErrInvalidFixture,
			wantMsg: "is not a material key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "fixtures.yaml", tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestBuildUnknownName(t *testing.T) {
	set, err := NewSet(nil)
	require.NoError(t, err)

	_, err = set.Build("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildDuplicateEnchant(t *testing.T) {
	_, err := Build("sword", Definition{
		Enchants: map[string]int{"sharpness": 1, "minecraft:sharpness": 2},
	})
	assert.ErrorIs(t, err, ErrDuplicateEnchant)
}

func TestNewSetRejectsBadNames(t *testing.T) {
	_, err := NewSet(map[string]Definition{"a::b": {}, " ": {}})
	assert.ErrorIs(t, err, ErrInvalidFixture)
	assert.Contains(t, err.Error(), "must not be empty")
	assert.Contains(t, err.Error(), "must not contain")
}
