package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/metamock/pkg/types"
)

func TestAddEnchant(t *testing.T) {
	m := New()

	added, err := m.AddEnchant(types.EnchantmentSharpness, 3, true)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, m.HasEnchants())
	assert.True(t, m.HasEnchant(types.EnchantmentSharpness))
	assert.Equal(t, 3, m.GetEnchantLevel(types.EnchantmentSharpness))

	added, err = m.AddEnchant(types.EnchantmentSharpness, 3, true)
	require.NoError(t, err)
	assert.False(t, added, "same level is a no-op")
	assert.Equal(t, 3, m.GetEnchantLevel(types.EnchantmentSharpness))

	added, err = m.AddEnchant(types.EnchantmentSharpness, 5, true)
	require.NoError(t, err)
	assert.True(t, added, "different level updates")
	assert.Equal(t, 5, m.GetEnchantLevel(types.EnchantmentSharpness))
}

func TestAddEnchantWithRestriction(t *testing.T) {
	m := New()

	added, err := m.AddEnchant(types.EnchantmentLooting, 2, false)
	assert.False(t, added)
	assert.ErrorIs(t, err, types.ErrUnimplemented)
	assert.False(t, m.HasEnchant(types.EnchantmentLooting), "state unchanged on error")

	var ue *types.UnimplementedError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Op, "AddEnchant")
}

func TestAddEnchantSameLevelBeforeRestriction(t *testing.T) {
	m := New()
	_, err := m.AddEnchant(types.EnchantmentLooting, 2, true)
	require.NoError(t, err)

	// The duplicate check runs first, so a restricted call with the stored
	// level reports "no change" instead of failing.
	added, err := m.AddEnchant(types.EnchantmentLooting, 2, false)
	assert.NoError(t, err)
	assert.False(t, added)
}

func TestGetEnchantLevelAbsentAndZero(t *testing.T) {
	m := New()
	_, err := m.AddEnchant(types.EnchantmentMending, 0, true)
	require.NoError(t, err)

	assert.Equal(t, 0, m.GetEnchantLevel(types.EnchantmentMending))
	assert.Equal(t, 0, m.GetEnchantLevel(types.EnchantmentInfinity))

	lvl, ok := m.LookupEnchant(types.EnchantmentMending)
	assert.True(t, ok)
	assert.Equal(t, 0, lvl)

	_, ok = m.LookupEnchant(types.EnchantmentInfinity)
	assert.False(t, ok)
}

func TestRemoveEnchant(t *testing.T) {
	m := New()
	_, err := m.AddEnchant(types.EnchantmentUnbreaking, 3, true)
	require.NoError(t, err)

	assert.True(t, m.RemoveEnchant(types.EnchantmentUnbreaking))
	assert.False(t, m.HasEnchant(types.EnchantmentUnbreaking))
	assert.False(t, m.HasEnchants())

	assert.False(t, m.RemoveEnchant(types.EnchantmentUnbreaking), "already removed")
	assert.False(t, m.RemoveEnchant(types.EnchantmentFortune), "never present")
}

func TestGetEnchantsIsACopy(t *testing.T) {
	m := New()
	_, err := m.AddEnchant(types.EnchantmentProtection, 4, true)
	require.NoError(t, err)

	got := m.GetEnchants()
	assert.Equal(t, map[types.Enchantment]int{types.EnchantmentProtection: 4}, got)

	got[types.EnchantmentProtection] = 1
	got[types.EnchantmentSmite] = 2
	assert.Equal(t, 4, m.GetEnchantLevel(types.EnchantmentProtection))
	assert.False(t, m.HasEnchant(types.EnchantmentSmite))
}
