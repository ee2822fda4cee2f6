package fixture

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/metamock/pkg/types"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the shared validator with the fixture rules
// registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("enchantment", validateEnchantment)
		_ = v.RegisterValidation("material", validateMaterial)
		validate = v
	})
	return validate
}

func validateEnchantment(fl validator.FieldLevel) bool {
	return types.IsValidEnchantmentKey(fl.Field().String())
}

func validateMaterial(fl validator.FieldLevel) bool {
	_, err := types.ParseMaterial(fl.Field().String())
	return err == nil
}

// validateDocument checks item names and struct rules. All problems are
// reported together, wrapped in ErrInvalidFixture.
func validateDocument(doc document) error {
	var problems []string
	for name := range doc.Items {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, "item name must not be empty")
		}
		if strings.Contains(name, keyDelimiter) {
			problems = append(problems, fmt.Sprintf("item name %q must not contain %q", name, keyDelimiter))
		}
	}

	if err := getValidator().Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidFixture, err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return fmt.Errorf("%w: %s", ErrInvalidFixture, strings.Join(problems, "; "))
}

// describe turns a field error into a message that names the fixture path,
// e.g. "Items[sword].Damage must be >= 0".
func describe(fe validator.FieldError) string {
	path := strings.TrimPrefix(fe.Namespace(), "document.")
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", path, fe.Param())
	case "enchantment":
		return fmt.Sprintf("%s: %q is not an enchantment key", path, fe.Value())
	case "material":
		return fmt.Sprintf("%s: %q is not a material key", path, fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", path, fe.Tag())
	}
}
