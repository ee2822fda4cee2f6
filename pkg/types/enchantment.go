package types

import (
	"fmt"
	"strings"
)

// Enchantment identifies an enchantment by its namespaced key,
// e.g. "minecraft:sharpness".
type Enchantment string

// Common enchantments.
const (
	EnchantmentSharpness       Enchantment = "minecraft:sharpness"
	EnchantmentSmite           Enchantment = "minecraft:smite"
	EnchantmentBaneOfArthropod Enchantment = "minecraft:bane_of_arthropods"
	EnchantmentKnockback       Enchantment = "minecraft:knockback"
	EnchantmentFireAspect      Enchantment = "minecraft:fire_aspect"
	EnchantmentLooting         Enchantment = "minecraft:looting"
	EnchantmentEfficiency      Enchantment = "minecraft:efficiency"
	EnchantmentSilkTouch       Enchantment = "minecraft:silk_touch"
	EnchantmentFortune         Enchantment = "minecraft:fortune"
	EnchantmentUnbreaking      Enchantment = "minecraft:unbreaking"
	EnchantmentMending         Enchantment = "minecraft:mending"
	EnchantmentProtection      Enchantment = "minecraft:protection"
	EnchantmentPower           Enchantment = "minecraft:power"
	EnchantmentInfinity        Enchantment = "minecraft:infinity"
)

// ParseEnchantment normalizes s into an Enchantment. A bare key such as
// "sharpness" is placed in DefaultNamespace.
// Returns ErrInvalidEnchantment if s is not a well-formed namespaced key.
func ParseEnchantment(s string) (Enchantment, error) {
	ns, key, ok := splitKey(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidEnchantment, s)
	}
	return Enchantment(ns + ":" + key), nil
}

// IsValidEnchantmentKey reports whether s parses as an enchantment key.
func IsValidEnchantmentKey(s string) bool {
	_, _, ok := splitKey(s)
	return ok
}

// Namespace returns the part before the colon.
func (e Enchantment) Namespace() string {
	ns, _, _ := strings.Cut(string(e), ":")
	return ns
}

// Key returns the part after the colon.
func (e Enchantment) Key() string {
	_, key, _ := strings.Cut(string(e), ":")
	return key
}

func (e Enchantment) String() string {
	return string(e)
}
