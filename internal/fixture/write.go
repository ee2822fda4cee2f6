package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// starterHeader is written above the starter definitions.
const starterHeader = `# metamock fixtures
# Each entry under items builds one ItemMetaMock. Unset display_name and
# lore stay unset; enchantment keys may omit the minecraft: namespace.

`

// Starter returns the definitions written by WriteIfMissing.
func Starter() map[string]Definition {
	name := "Excalibur"
	lore := []string{"Line1", "Line2"}
	return map[string]Definition{
		"excalibur": {
			Material:    "minecraft:diamond_sword",
			DisplayName: &name,
			Lore:        &lore,
			Damage:      5,
			Enchants:    map[string]int{"minecraft:sharpness": 3},
		},
		"plain": {},
	}
}

// WriteIfMissing writes defs to path as YAML unless the file already
// exists. It reports whether the file was written.
func WriteIfMissing(path string, defs map[string]Definition) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat fixture file: %w", err)
	}

	if _, err := NewSet(defs); err != nil {
		return false, err
	}

	data, err := yaml.Marshal(&document{Items: defs})
	if err != nil {
		return false, fmt.Errorf("marshal fixtures: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create fixture dir: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(starterHeader), data...), 0o644); err != nil {
		return false, fmt.Errorf("write fixture file: %w", err)
	}
	return true, nil
}
