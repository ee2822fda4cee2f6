package types

// ItemMeta is the item-metadata contract a plugin sees for an inventory item.
// Methods that an implementation does not support return an error matching
// ErrUnimplemented.
type ItemMeta interface {
	// HasDisplayName reports whether a display name is set.
	HasDisplayName() bool

	// GetDisplayName returns the display name, or "" when none is set.
	GetDisplayName() string

	// SetDisplayName sets the display name.
	SetDisplayName(name string)

	HasLocalizedName() (bool, error)
	GetLocalizedName() (string, error)
	SetLocalizedName(name string) error

	// HasLore reports whether lore is set. Empty lore counts as set.
	HasLore() bool

	// GetLore returns a copy of the lore lines.
	// Returns ErrLoreNotSet if no lore is set.
	GetLore() ([]string, error)

	// SetLore stores a copy of lines. A nil slice removes the lore.
	SetLore(lines []string)

	// HasEnchants reports whether at least one enchantment is present.
	HasEnchants() bool

	// HasEnchant reports whether the given enchantment is present.
	HasEnchant(e Enchantment) bool

	// GetEnchantLevel returns the level of e, or 0 when e is absent.
	GetEnchantLevel(e Enchantment) int

	// GetEnchants returns a copy of the enchantment table.
	GetEnchants() map[Enchantment]int

	// AddEnchant adds e at the given level. It returns false without
	// changing anything when e is already present at that level.
	AddEnchant(e Enchantment, level int, ignoreLevelRestriction bool) (bool, error)

	// RemoveEnchant removes e and reports whether it was present.
	RemoveEnchant(e Enchantment) bool

	HasConflictingEnchant(e Enchantment) (bool, error)

	AddItemFlags(flags ...ItemFlag) error
	RemoveItemFlags(flags ...ItemFlag) error
	GetItemFlags() ([]ItemFlag, error)
	HasItemFlag(flag ItemFlag) (bool, error)

	IsUnbreakable() (bool, error)
	SetUnbreakable(unbreakable bool) error

	// Serialize returns a key/value form of the metadata.
	Serialize() (map[string]any, error)
}

// Damageable is implemented by item metadata that tracks wear.
type Damageable interface {
	// HasDamage reports whether the damage is greater than zero.
	HasDamage() bool
	GetDamage() int
	SetDamage(damage int)
}
