// Package inventory builds equipment trees, either the built-in sample
// rental inventory or one described in configuration.
package inventory

import (
	"github.com/iwvelando/gear-rental/internal/gear"
)

// Sample returns the sample rental inventory: two individually listed items
// and two kits. Kits hold their own gear independently of the items listed
// in the surrounding collection.
func Sample() *gear.Collection {
	return gear.NewCollection(
		gear.NewCamera("Arri Alexa Mini", 18500.00, "Full-frame", "2K", "10-bit"),
		gear.NewLens("Zeiss CP.3 Kit", 7500.00, "Prime"),
		gear.NewKit("Budget Kit",
			gear.NewCamera("Arri Alexa Mini", 18500.00, "Full-frame", "2K", "10-bit"),
			gear.NewLens("Zeiss CP.3 Kit", 7500.00, "Prime"),
			gear.NewHighSpeedCamera("Phantom 8K Flex", 48500.00, "Full-frame", "8K Ultra HD", "12-bit", "4000fps", "Phantom CineStation 4"),
		),
		gear.NewKit("Pro Kit",
			gear.NewCamera("Epic Red Dragon", 24000.00, "Full-frame", "6K", "16-bit"),
			gear.NewLens("Cook Anamorphic Primes Kit", 14000.00, "Prime"),
			gear.NewLens("24-290mm Angenieux Optimo T2.8", 5000.00, "Zoom"),
			gear.NewHighSpeedCamera("Phantom 4K Flex", 30000.00, "Full-frame", "4K Ultra HD", "12-bit", "10000fps", "Phantom CineStation 4"),
		),
	)
}
