// Package fixture loads named item-metadata fixtures from YAML or JSON files
// and builds ItemMetaMock records from them.
//
// A fixture file looks like:
//
//	items:
//	  excalibur:
//	    material: diamond_sword
//	    display_name: Excalibur
//	    lore: ["Line1", "Line2"]
//	    damage: 5
//	    enchants:
//	      sharpness: 3
//
// Item names are case-insensitive and must not contain "::".
package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/metamock/pkg/meta"
	"github.com/mesh-intelligence/metamock/pkg/types"
)

// keyDelimiter replaces viper's default "." so that namespaced keys such as
// "myplugin:tier.two" survive as single map keys.
const keyDelimiter = "::"

// DefaultMaterial is used when a definition names no material.
const DefaultMaterial = types.MaterialStone

// Fixture errors.
var (
	ErrFileNotFound     = errors.New("fixture file not found")
	ErrNotFound         = errors.New("fixture not found")
	ErrInvalidFixture   = errors.New("invalid fixture")
	ErrDuplicateEnchant = errors.New("enchantment listed twice")
)

// Definition describes one item as written in a fixture file. Nil
// DisplayName and Lore mean the field is unset.
type Definition struct {
	Material    string         `mapstructure:"material" yaml:"material,omitempty" validate:"omitempty,material"`
	DisplayName *string        `mapstructure:"display_name" yaml:"display_name,omitempty"`
	Lore        *[]string      `mapstructure:"lore" yaml:"lore,omitempty"`
	Damage      int            `mapstructure:"damage" yaml:"damage,omitempty" validate:"gte=0"`
	Enchants    map[string]int `mapstructure:"enchants" yaml:"enchants,omitempty" validate:"dive,keys,enchantment,endkeys,gte=1"`
}

// document is the top-level shape of a fixture file.
type document struct {
	Items map[string]Definition `mapstructure:"items" yaml:"items" validate:"dive"`
}

// Item is a built fixture: the record plus the material it is attached to.
type Item struct {
	Name     string
	Material types.Material
	Meta     *meta.ItemMetaMock
}

// Set holds the validated definitions of one fixture file.
type Set struct {
	path string
	defs map[string]Definition
}

// Load reads and validates the fixture file at path. The format follows the
// file extension; files without one are read as YAML.
// Returns ErrFileNotFound if the file does not exist and ErrInvalidFixture
// if a definition fails validation.
func Load(path string) (*Set, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	// UnmarshalKey decodes the raw subtree, which keeps items declared
	// as an empty mapping; Unmarshal would drop them.
	var doc document
	if err := v.UnmarshalKey("items", &doc.Items); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	defs := make(map[string]Definition, len(doc.Items))
	for name, def := range doc.Items {
		defs[strings.ToLower(name)] = def
	}
	return &Set{path: path, defs: defs}, nil
}

// NewSet returns a Set over defs without reading a file. The definitions
// are validated the same way Load validates them.
func NewSet(defs map[string]Definition) (*Set, error) {
	doc := document{Items: defs}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	s := &Set{defs: make(map[string]Definition, len(defs))}
	for name, def := range defs {
		s.defs[strings.ToLower(name)] = def
	}
	return s, nil
}

// Path returns the file the set was loaded from, or "" for NewSet.
func (s *Set) Path() string {
	return s.path
}

// Len returns the number of definitions.
func (s *Set) Len() int {
	return len(s.defs)
}

// Names returns the fixture names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Definition returns the definition registered under name.
// Returns ErrNotFound if there is none.
func (s *Set) Definition(name string) (Definition, error) {
	def, ok := s.defs[strings.ToLower(name)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return def, nil
}

// Build returns a fresh record for the named fixture. Every call returns
// an independent record.
func (s *Set) Build(name string) (*Item, error) {
	def, err := s.Definition(name)
	if err != nil {
		return nil, err
	}
	return Build(strings.ToLower(name), def)
}

// Build turns def into an Item. Enchantments are added without level
// restrictions.
func Build(name string, def Definition) (*Item, error) {
	material := DefaultMaterial
	if def.Material != "" {
		var err error
		if material, err = types.ParseMaterial(def.Material); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", name, err)
		}
	}

	m := meta.New()
	if def.DisplayName != nil {
		m.SetDisplayName(*def.DisplayName)
	}
	if def.Lore != nil {
		lines := *def.Lore
		if lines == nil {
			lines = []string{}
		}
		m.SetLore(lines)
	}
	m.SetDamage(def.Damage)

	keys := make([]string, 0, len(def.Enchants))
	for k := range def.Enchants {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		e, err := types.ParseEnchantment(k)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", name, err)
		}
		if m.HasEnchant(e) {
			return nil, fmt.Errorf("fixture %q: %w: %s", name, ErrDuplicateEnchant, e)
		}
		if _, err := m.AddEnchant(e, def.Enchants[k], true); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", name, err)
		}
	}

	return &Item{
		Name:     name,
		Material: m.UpdateMaterial(material),
		Meta:     m,
	}, nil
}
