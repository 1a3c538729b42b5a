package core

import (
	"strings"

	"github.com/google/uuid"
)

const maxCategoryNameLen = 50

// Category labels operations of a single type. The type is fixed at creation
// and constrains which operations may reference the category.
type Category struct {
	id      uuid.UUID
	catType CategoryType
	name    string
}

// NewCategory creates a category of the given type.
func NewCategory(name string, catType CategoryType) (*Category, error) {
	if !catType.Valid() {
		return nil, validationf("unknown category type %q", catType)
	}
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	return &Category{id: uuid.New(), catType: catType, name: trimmed}, nil
}

// RestoreCategory rebuilds a category from persisted state with full
// validation.
func RestoreCategory(id uuid.UUID, name string, catType CategoryType) (*Category, error) {
	if id == uuid.Nil {
		return nil, validationf("category id is required")
	}
	if !catType.Valid() {
		return nil, validationf("unknown category type %q", catType)
	}
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	return &Category{id: id, catType: catType, name: trimmed}, nil
}

func (c *Category) ID() uuid.UUID      { return c.id }
func (c *Category) Type() CategoryType { return c.catType }
func (c *Category) Name() string       { return c.name }

// Rename applies the same validation as creation.
func (c *Category) Rename(name string) error {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return err
	}
	c.name = trimmed
	return nil
}

// ValidateOperationCompatibility is the sole gate preventing an operation of
// one type from being attached to a category of the other.
func (c *Category) ValidateOperationCompatibility(opType OperationType) error {
	if !Compatible(c.catType, opType) {
		return incompatibleErr(c.catType, opType)
	}
	return nil
}

// Clone returns an independent copy.
func (c *Category) Clone() *Category {
	clone := *c
	return &clone
}

func validateCategoryName(name string) (string, error) {
	t := strings.TrimSpace(name)
	if t == "" {
		return "", validationf("category name must not be empty")
	}
	if len([]rune(t)) > maxCategoryNameLen {
		return "", validationf("category name exceeds %d characters", maxCategoryNameLen)
	}
	return t, nil
}
