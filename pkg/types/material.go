package types

import "fmt"

// Material identifies an item type by its namespaced key.
type Material string

// Materials used by the default fixtures.
const (
	MaterialAir          Material = "minecraft:air"
	MaterialStone        Material = "minecraft:stone"
	MaterialDiamondSword Material = "minecraft:diamond_sword"
	MaterialIronPickaxe  Material = "minecraft:iron_pickaxe"
	MaterialBow          Material = "minecraft:bow"
	MaterialWrittenBook  Material = "minecraft:written_book"
)

// ParseMaterial normalizes s into a Material.
// Returns ErrInvalidMaterial if s is not a well-formed namespaced key.
func ParseMaterial(s string) (Material, error) {
	ns, key, ok := splitKey(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMaterial, s)
	}
	return Material(ns + ":" + key), nil
}

func (m Material) String() string {
	return string(m)
}
