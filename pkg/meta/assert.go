package meta

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/require"
)

// ErrAssertion is matched by every *AssertionError.
var ErrAssertion = errors.New("assertion failed")

// AssertionError describes a failed lore check.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Is reports whether target is ErrAssertion.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

func assertionf(format string, args ...any) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// CheckLore verifies that the lore holds exactly lines, in order.
// It returns an *AssertionError naming the first differing line, the line
// count mismatch, or the absence of lore.
func (m *ItemMetaMock) CheckLore(lines ...string) error {
	switch {
	case !m.hasLore:
		return assertionf("No lore was set")
	case len(m.lore) != len(lines):
		return assertionf("Lore contained %d lines but should contain %d lines", len(m.lore), len(lines))
	}
	for i := range m.lore {
		if m.lore[i] != lines[i] {
			return assertionf("Line %d should be '%s' but was '%s'", i, lines[i], m.lore[i])
		}
	}
	return nil
}

// CheckNoLore verifies that the lore is unset or empty.
func (m *ItemMetaMock) CheckNoLore() error {
	if m.hasLore && len(m.lore) != 0 {
		return assertionf("Lore was set but shouldn't have been set")
	}
	return nil
}

type tHelper interface {
	Helper()
}

// AssertLore fails the test immediately unless the lore holds exactly
// lines, in order.
func (m *ItemMetaMock) AssertLore(t require.TestingT, lines ...string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.CheckLore(lines...); err != nil {
		require.Fail(t, err.Error())
	}
}

// AssertNoLore fails the test immediately if lore is set and not empty.
func (m *ItemMetaMock) AssertNoLore(t require.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.CheckNoLore(); err != nil {
		require.Fail(t, err.Error())
	}
}
