// Package rental runs the rental pricing scenarios over an equipment tree:
// kit discounts, optionally preceded by a permanent price adjustment, and
// the rendering of the result.
package rental

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/output"
	"github.com/iwvelando/gear-rental/pkg/validation"
	"go.uber.org/zap"
)

// ApplyDiscount computes the kit discount for every kit in root and renders
// the tree with each kit's totals to w in the given output format.
func ApplyDiscount(logger *zap.Logger, w io.Writer, root gear.Node, discountFraction float64, outputFormat string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	discount, err := pricing.NewKitDiscount(discountFraction)
	if err != nil {
		return err
	}
	if err := gear.Walk(root, discount); err != nil {
		return fmt.Errorf("computing kit discounts: %w", err)
	}

	return report(logger, w, root, discount, outputFormat)
}

// ApplyAdjustmentThenDiscount permanently adjusts every price in root by
// adjustmentFraction in the direction of sign, then computes and renders the
// kit discounts like ApplyDiscount. The adjustment is kept even if a later
// step fails.
func ApplyAdjustmentThenDiscount(logger *zap.Logger, w io.Writer, root gear.Node, discountFraction, adjustmentFraction float64, sign, outputFormat string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	discount, err := pricing.NewKitDiscount(discountFraction)
	if err != nil {
		return err
	}
	adjust, err := pricing.NewAdjustPrice(adjustmentFraction, sign)
	if err != nil {
		return err
	}

	// Mutation first, so the discount sees the adjusted prices.
	if err := gear.Walk(root, adjust, discount); err != nil {
		return fmt.Errorf("adjusting prices and computing kit discounts: %w", err)
	}
	logger.Debug("adjusted prices",
		zap.String("op", "rental.ApplyAdjustmentThenDiscount"),
		zap.Float64("adjustment", adjustmentFraction),
		zap.String("sign", sign),
	)

	return report(logger, w, root, discount, outputFormat)
}

// report checks the discount results against the tree and renders them.
func report(logger *zap.Logger, w io.Writer, root gear.Node, discount *pricing.KitDiscount, outputFormat string) error {
	totals := discount.Totals()
	logger.Debug(fmt.Sprintf("computed discount for %d kits", len(totals)),
		zap.String("op", "rental.report"),
		zap.Float64("discount", discount.Fraction),
	)

	if kits := gear.CountKits(root); kits != len(totals) {
		return fmt.Errorf("%w: %d kits in tree but %d discount results", validation.ErrInvariantViolation, kits, len(totals))
	}

	return render(logger, w, root, totals, outputFormat)
}

// render writes to w only when the whole traversal succeeds, so a failed
// rendering leaves no partial output behind.
func render(logger *zap.Logger, w io.Writer, root gear.Node, totals []pricing.KitTotals, outputFormat string) error {
	var buf bytes.Buffer

	switch outputFormat {
	case constants.OutputFormatPretty:
		if err := root.Accept(output.NewPrinter(&buf, totals)); err != nil {
			return fmt.Errorf("rendering inventory: %w", err)
		}
	case constants.OutputFormatCSV:
		summary := output.NewCSVSummary(&buf, totals)
		if err := root.Accept(summary); err != nil {
			return fmt.Errorf("rendering kit summary: %w", err)
		}
		if err := summary.Flush(); err != nil {
			return fmt.Errorf("rendering kit summary: %w", err)
		}
	}

	logger.Debug(fmt.Sprintf("rendered %d bytes", buf.Len()),
		zap.String("op", "rental.render"),
		zap.String("format", outputFormat),
	)
	_, err := buf.WriteTo(w)
	return err
}
