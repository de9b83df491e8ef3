package service

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Kind classifies a catalog service into one of the fixed laundry categories.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// WashFold is the standard wash and fold service.
	WashFold

	// DryClean is professional dry cleaning.
	DryClean

	// Ironing is pressing and ironing.
	Ironing

	// Special covers special treatments such as stain removal or delicates.
	Special
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		WashFold:    "WashFold",
		DryClean:    "DryClean",
		Ironing:     "Ironing",
		Special:     "Special",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		WashFold: "WashFold",
		DryClean: "DryClean",
		Ironing:  "Ironing",
		Special:  "Special",
	}
}

// Validate checks if the Kind value is one of the defined categories.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service kind is invalid",
			fmt.Errorf("%d is not a valid service kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements the fmt.Stringer interface and is safe on any value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind from its string representation.
// Used when reconstructing catalog entries from persistence or API input.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"service kind is invalid",
		fmt.Errorf("%q is not a valid service kind", s),
	)
}
