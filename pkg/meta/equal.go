package meta

import (
	"unicode/utf16"

	"github.com/mesh-intelligence/metamock/pkg/types"
)

// hashPrime is the multiplier used by the host platform's hash contract.
const hashPrime = 31

// Equal reports whether other is item metadata with the same display name
// and lore. Presence matters: unset lore differs from empty lore. Values
// that do not implement types.ItemMeta are never equal.
func (m *ItemMetaMock) Equal(other any) bool {
	o, ok := other.(types.ItemMeta)
	if !ok || o == nil {
		return false
	}
	if om, ok := o.(*ItemMetaMock); ok && om == nil {
		return false
	}
	return m.displayNameEqual(o) && m.loreEqual(o)
}

func (m *ItemMetaMock) displayNameEqual(o types.ItemMeta) bool {
	if !m.hasDisplayName {
		return !o.HasDisplayName()
	}
	return o.HasDisplayName() && m.displayName == o.GetDisplayName()
}

func (m *ItemMetaMock) loreEqual(o types.ItemMeta) bool {
	if !m.hasLore {
		return !o.HasLore()
	}
	if !o.HasLore() {
		return false
	}
	other, err := o.GetLore()
	if err != nil || len(other) != len(m.lore) {
		return false
	}
	for i := range m.lore {
		if m.lore[i] != other[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash over the display name and lore. Records that are
// Equal have the same hash. Absent fields contribute 0.
func (m *ItemMetaMock) Hash() int32 {
	var nameHash, loreHash int32
	if m.hasDisplayName {
		nameHash = stringHash(m.displayName)
	}
	if m.hasLore {
		loreHash = linesHash(m.lore)
	}
	result := int32(1)
	result = hashPrime*result + nameHash
	result = hashPrime*result + loreHash
	return result
}

// stringHash computes s[0]*31^(n-1) + ... + s[n-1] over UTF-16 code units.
func stringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = hashPrime*h + int32(u)
	}
	return h
}

// linesHash folds the line hashes in order, seeded with 1.
func linesHash(lines []string) int32 {
	h := int32(1)
	for _, l := range lines {
		h = hashPrime*h + stringHash(l)
	}
	return h
}
