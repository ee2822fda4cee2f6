// Package types defines the item-metadata capability interfaces, the value
// types they exchange (enchantments, item flags, materials), and the standard
// errors shared by the metamock packages.
//
// ItemMeta and Damageable mirror the host platform's item-metadata contract.
// Implementations that do not support part of the contract return an
// *UnimplementedError, which matches ErrUnimplemented through errors.Is.
package types
