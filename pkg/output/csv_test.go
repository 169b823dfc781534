package output

import (
	"bytes"
	"testing"

	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
	"github.com/iwvelando/gear-rental/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSummary(t *testing.T) {
	root := gear.NewCollection(
		gear.NewCamera("Arri Alexa Mini", 18500, "Full-frame", "2K", "10-bit"),
		gear.NewKit("Budget Kit",
			gear.NewCamera("Arri Alexa Mini", 18500.00, "Full-frame", "2K", "10-bit"),
			gear.NewLens("Zeiss CP.3 Kit", 7500.00, "Prime"),
		),
		gear.NewKit("Pro, Plus Kit", gear.NewLens("Cook", 1000, "Prime")),
	)

	var buf bytes.Buffer
	summary := NewCSVSummary(&buf, discountTotals(t, root, 0.05))
	require.NoError(t, root.Accept(summary))
	require.NoError(t, summary.Flush())

	expected := "kit,total before,total after,discount\n" +
		"Budget Kit,26000.00,24700.00,1300.00\n" +
		"\"Pro, Plus Kit\",1000.00,950.00,50.00\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVSummaryWithoutKits(t *testing.T) {
	var buf bytes.Buffer
	summary := NewCSVSummary(&buf, nil)
	require.NoError(t, gear.NewCollection(gear.NewLens("A", 1, "Prime")).Accept(summary))
	require.NoError(t, summary.Flush())

	assert.Equal(t, "kit,total before,total after,discount\n", buf.String())
}

func TestCSVSummaryMismatch(t *testing.T) {
	var buf bytes.Buffer
	summary := NewCSVSummary(&buf, []pricing.KitTotals{})
	err := gear.NewKit("Budget Kit").Accept(summary)
	assert.ErrorIs(t, err, validation.ErrInvariantViolation)
}
