package meta

import "github.com/mesh-intelligence/metamock/pkg/types"

// The methods below are part of types.ItemMeta but are not modelled by the
// mock. Each returns an *types.UnimplementedError naming the method.

func (m *ItemMetaMock) Serialize() (map[string]any, error) {
	return nil, types.Unimplemented("Serialize")
}

func (m *ItemMetaMock) HasLocalizedName() (bool, error) {
	return false, types.Unimplemented("HasLocalizedName")
}

func (m *ItemMetaMock) GetLocalizedName() (string, error) {
	return "", types.Unimplemented("GetLocalizedName")
}

func (m *ItemMetaMock) SetLocalizedName(name string) error {
	return types.Unimplemented("SetLocalizedName")
}

func (m *ItemMetaMock) HasConflictingEnchant(e types.Enchantment) (bool, error) {
	return false, types.Unimplemented("HasConflictingEnchant")
}

func (m *ItemMetaMock) AddItemFlags(flags ...types.ItemFlag) error {
	return types.Unimplemented("AddItemFlags")
}

func (m *ItemMetaMock) RemoveItemFlags(flags ...types.ItemFlag) error {
	return types.Unimplemented("RemoveItemFlags")
}

func (m *ItemMetaMock) GetItemFlags() ([]types.ItemFlag, error) {
	return nil, types.Unimplemented("GetItemFlags")
}

func (m *ItemMetaMock) HasItemFlag(flag types.ItemFlag) (bool, error) {
	return false, types.Unimplemented("HasItemFlag")
}

func (m *ItemMetaMock) IsUnbreakable() (bool, error) {
	return false, types.Unimplemented("IsUnbreakable")
}

func (m *ItemMetaMock) SetUnbreakable(unbreakable bool) error {
	return types.Unimplemented("SetUnbreakable")
}
