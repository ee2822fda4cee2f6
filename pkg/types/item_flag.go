package types

import (
	"fmt"
	"strings"
)

// ItemFlag hides part of an item's tooltip.
type ItemFlag string

// Item flags known to the host platform.
const (
	ItemFlagHideEnchants      ItemFlag = "HIDE_ENCHANTS"
	ItemFlagHideAttributes    ItemFlag = "HIDE_ATTRIBUTES"
	ItemFlagHideUnbreakable   ItemFlag = "HIDE_UNBREAKABLE"
	ItemFlagHideDestroys      ItemFlag = "HIDE_DESTROYS"
	ItemFlagHidePlacedOn      ItemFlag = "HIDE_PLACED_ON"
	ItemFlagHidePotionEffects ItemFlag = "HIDE_POTION_EFFECTS"
)

// validItemFlags is the set of recognized flag names.
var validItemFlags = map[ItemFlag]bool{
	ItemFlagHideEnchants:      true,
	ItemFlagHideAttributes:    true,
	ItemFlagHideUnbreakable:   true,
	ItemFlagHideDestroys:      true,
	ItemFlagHidePlacedOn:      true,
	ItemFlagHidePotionEffects: true,
}

// ParseItemFlag accepts a flag name in any case.
// Returns ErrInvalidItemFlag for unknown names.
func ParseItemFlag(s string) (ItemFlag, error) {
	f := ItemFlag(strings.ToUpper(strings.TrimSpace(s)))
	if !validItemFlags[f] {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemFlag, s)
	}
	return f, nil
}
