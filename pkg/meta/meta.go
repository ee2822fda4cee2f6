// Package meta provides ItemMetaMock, an in-memory item-metadata record for
// plugin unit tests. It satisfies types.ItemMeta and types.Damageable.
//
// Equality and hashing follow the host platform's contract for generic
// items: only the display name and the lore take part. Damage and
// enchantments are ignored by Equal and Hash.
package meta

import "github.com/mesh-intelligence/metamock/pkg/types"

var (
	_ types.ItemMeta   = (*ItemMetaMock)(nil)
	_ types.Damageable = (*ItemMetaMock)(nil)
)

// ItemMetaMock is a mutable item-metadata record. The zero value is an
// empty record ready for use. It is not safe for concurrent use.
type ItemMetaMock struct {
	displayName    string
	hasDisplayName bool

	// lore is owned by the record; it is copied on every read and write.
	lore    []string
	hasLore bool

	damage   int
	enchants map[types.Enchantment]int
}

// New returns an empty record.
func New() *ItemMetaMock {
	return &ItemMetaMock{enchants: make(map[types.Enchantment]int)}
}

// NewFrom returns a record holding the display name and lore of src.
// Each field is copied only when src reports having it. Damage and
// enchantments are not copied.
func NewFrom(src types.ItemMeta) *ItemMetaMock {
	m := New()
	if src == nil {
		return m
	}
	if src.HasDisplayName() {
		m.SetDisplayName(src.GetDisplayName())
	}
	if src.HasLore() {
		if lore, err := src.GetLore(); err == nil {
			m.setLore(lore)
		}
	}
	return m
}

// HasDisplayName reports whether a display name is set.
func (m *ItemMetaMock) HasDisplayName() bool {
	return m.hasDisplayName
}

// GetDisplayName returns the display name, or "" when none is set.
func (m *ItemMetaMock) GetDisplayName() string {
	return m.displayName
}

// SetDisplayName sets the display name. An empty name is still a set name;
// use ClearDisplayName to unset it.
func (m *ItemMetaMock) SetDisplayName(name string) {
	m.displayName = name
	m.hasDisplayName = true
}

// ClearDisplayName removes the display name.
func (m *ItemMetaMock) ClearDisplayName() {
	m.displayName = ""
	m.hasDisplayName = false
}

// HasLore reports whether lore is set. Empty lore counts as set.
func (m *ItemMetaMock) HasLore() bool {
	return m.hasLore
}

// GetLore returns a copy of the lore lines.
// Returns types.ErrLoreNotSet if no lore is set.
func (m *ItemMetaMock) GetLore() ([]string, error) {
	if !m.hasLore {
		return nil, types.ErrLoreNotSet
	}
	return copyLines(m.lore), nil
}

// SetLore stores a copy of lines. A nil slice removes the lore; an empty
// non-nil slice sets empty lore.
func (m *ItemMetaMock) SetLore(lines []string) {
	if lines == nil {
		m.lore = nil
		m.hasLore = false
		return
	}
	m.setLore(lines)
}

func (m *ItemMetaMock) setLore(lines []string) {
	m.lore = copyLines(lines)
	m.hasLore = true
}

// HasDamage reports whether the damage is greater than zero.
func (m *ItemMetaMock) HasDamage() bool {
	return m.damage > 0
}

// GetDamage returns the damage value.
func (m *ItemMetaMock) GetDamage() int {
	return m.damage
}

// SetDamage sets the damage value. Negative values are stored as given.
func (m *ItemMetaMock) SetDamage(damage int) {
	m.damage = damage
}

// UpdateMaterial is called by item factories when the metadata is attached
// to an item of the given material. The generic record accepts every
// material unchanged.
func (m *ItemMetaMock) UpdateMaterial(material types.Material) types.Material {
	return material
}

// copyLines returns a non-nil copy of lines.
func copyLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Clone returns an independent copy. Lore and enchantments are copied, so
// mutating the clone never affects m.
func (m *ItemMetaMock) Clone() *ItemMetaMock {
	c := &ItemMetaMock{
		displayName:    m.displayName,
		hasDisplayName: m.hasDisplayName,
		hasLore:        m.hasLore,
		damage:         m.damage,
		enchants:       make(map[types.Enchantment]int, len(m.enchants)),
	}
	if m.hasLore {
		c.lore = copyLines(m.lore)
	}
	for e, lvl := range m.enchants {
		c.enchants[e] = lvl
	}
	return c
}
