package output

import (
	"encoding/csv"
	"io"

	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
	"github.com/iwvelando/gear-rental/pkg/format"
)

// CSVSummary writes one comma-separated row per kit with its totals from a
// prior KitDiscount pass. Leaves and collections produce no rows.
type CSVSummary struct {
	gear.BaseVisitor

	w      *csv.Writer
	cursor kitCursor
	header bool
}

// NewCSVSummary creates a CSV summary writing to w.
func NewCSVSummary(w io.Writer, totals []pricing.KitTotals) *CSVSummary {
	return &CSVSummary{
		w:      csv.NewWriter(w),
		cursor: kitCursor{totals: totals},
	}
}

func (s *CSVSummary) writeHeader() error {
	if s.header {
		return nil
	}
	s.header = true
	return s.w.Write([]string{"kit", "total before", "total after", "discount"})
}

func (s *CSVSummary) ExitKit(k *gear.Kit) error {
	totals, err := s.cursor.next(k)
	if err != nil {
		return err
	}
	if err := s.writeHeader(); err != nil {
		return err
	}
	return s.w.Write([]string{
		totals.Name,
		format.Plain(totals.TotalBefore),
		format.Plain(totals.TotalAfter),
		format.Plain(totals.Discount()),
	})
}

// Flush writes the header if no kit was visited and flushes buffered rows.
func (s *CSVSummary) Flush() error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}
