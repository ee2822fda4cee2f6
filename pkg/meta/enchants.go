package meta

import (
	"maps"

	"github.com/mesh-intelligence/metamock/pkg/types"
)

// HasEnchants reports whether at least one enchantment is present.
func (m *ItemMetaMock) HasEnchants() bool {
	return len(m.enchants) > 0
}

// HasEnchant reports whether e is present.
func (m *ItemMetaMock) HasEnchant(e types.Enchantment) bool {
	_, ok := m.enchants[e]
	return ok
}

// GetEnchantLevel returns the level of e. An absent enchantment reports 0,
// the same as a present enchantment at level 0; use LookupEnchant to tell
// them apart.
func (m *ItemMetaMock) GetEnchantLevel(e types.Enchantment) int {
	return m.enchants[e]
}

// LookupEnchant returns the level of e and whether it is present.
func (m *ItemMetaMock) LookupEnchant(e types.Enchantment) (int, bool) {
	lvl, ok := m.enchants[e]
	return lvl, ok
}

// GetEnchants returns a copy of the enchantment table. Returns an empty map
// (not nil) when no enchantments are present.
func (m *ItemMetaMock) GetEnchants() map[types.Enchantment]int {
	out := make(map[types.Enchantment]int, len(m.enchants))
	maps.Copy(out, m.enchants)
	return out
}

// AddEnchant stores e at level. It returns false and changes nothing when
// e is already present at the same level. Level restrictions are not
// modelled: unless ignoreLevelRestriction is set the call fails with an
// error matching types.ErrUnimplemented.
func (m *ItemMetaMock) AddEnchant(e types.Enchantment, level int, ignoreLevelRestriction bool) (bool, error) {
	if existing, ok := m.enchants[e]; ok && existing == level {
		return false, nil
	}
	if !ignoreLevelRestriction {
		return false, types.Unimplemented("AddEnchant with level restriction")
	}
	if m.enchants == nil {
		m.enchants = make(map[types.Enchantment]int)
	}
	m.enchants[e] = level
	return true, nil
}

// RemoveEnchant removes e and reports whether it was present.
func (m *ItemMetaMock) RemoveEnchant(e types.Enchantment) bool {
	if _, ok := m.enchants[e]; !ok {
		return false
	}
	delete(m.enchants, e)
	return true
}
