// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/gear-rental/pkg/constants"
)

// ValidateFractionRange warns when a fraction lies outside (0,1). Such values
// are accepted by the operations but are almost always a typo, e.g. 5 instead
// of 0.05.
func ValidateFractionRange(name string, fraction float64) string {
	if fraction <= 0 || fraction >= 1 {
		return fmt.Sprintf("%s of %v is outside the expected range (0,1) - fractions are written as decimals, i.e. 0.10 equals 10%%",
			name, fraction)
	}
	return ""
}

// ValidatePrice warns about a leaf with a negative rental price.
func ValidatePrice(label string, price float64) string {
	if price < 0 {
		return fmt.Sprintf("%s has a negative rental price (%.2f)", label, price)
	}
	return ""
}

// ConfigValidator performs inventory and pricing validation
type ConfigValidator struct {
	Discount   float64
	Adjustment float64
	Inventory  []NodeInfo
}

// NodeInfo mirrors a configured inventory node.
type NodeInfo struct {
	Kind     string
	Name     string
	Brand    string
	Price    float64
	Children []NodeInfo
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if w := ValidateFractionRange("Discount", cv.Discount); w != "" {
		warnings = append(warnings, w)
	}
	if w := ValidateFractionRange("Adjustment", cv.Adjustment); w != "" {
		warnings = append(warnings, w)
	}

	for _, node := range cv.Inventory {
		warnings = append(warnings, validateNode(node)...)
	}

	return warnings
}

func validateNode(node NodeInfo) []string {
	var warnings []string

	switch node.Kind {
	case constants.KindKit:
		if len(node.Children) == 0 {
			warnings = append(warnings, fmt.Sprintf("Kit '%s' is empty - its totals will be zero", node.Name))
		}
	case constants.KindCollection:
		if len(node.Children) == 0 {
			warnings = append(warnings, "Collection is empty")
		}
	default:
		if w := ValidatePrice(fmt.Sprintf("%s '%s'", node.Kind, node.Brand), node.Price); w != "" {
			warnings = append(warnings, w)
		}
	}

	for _, child := range node.Children {
		warnings = append(warnings, validateNode(child)...)
	}
	return warnings
}
