package types

import (
	"errors"
	"fmt"
)

// Capability errors.
var (
	// ErrUnimplemented marks a contract method that the implementation
	// deliberately does not support.
	ErrUnimplemented = errors.New("operation not implemented")

	ErrLoreNotSet         = errors.New("lore is not set")
	ErrInvalidEnchantment = errors.New("invalid enchantment key")
	ErrInvalidItemFlag    = errors.New("invalid item flag")
	ErrInvalidMaterial    = errors.New("invalid material key")
)

// UnimplementedError names the contract method that is not supported.
// It matches ErrUnimplemented through errors.Is.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrUnimplemented)
}

// Is reports whether target is ErrUnimplemented.
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}

// Unimplemented returns an *UnimplementedError for op.
func Unimplemented(op string) error {
	return &UnimplementedError{Op: op}
}

// IsUnimplemented reports whether err marks an unsupported operation.
func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}
