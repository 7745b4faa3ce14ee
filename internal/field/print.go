package field

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/born-ml/rfield/internal/nn"
	"github.com/born-ml/rfield/internal/render"
)

// tableHeaders lists the rendered columns in order.
var tableHeaders = []string{"Layer", "Type", "Output Shape", "Origin", "Jump", "Receptive Field"}

// Fprint computes the analysis for m and writes it to w as an ASCII
// table, one row per reported module. Container rows leave the numeric
// columns blank.
func Fprint(w io.Writer, m nn.Module, inputShape [2]int, maxDepth int) error {
	records, err := Compute(m, inputShape, maxDepth)
	if err != nil {
		return err
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = tableRow(rec)
	}
	render.Table(w, tableHeaders, rows)
	return nil
}

// Print is Fprint to standard output.
func Print(m nn.Module, inputShape [2]int, maxDepth int) error {
	return Fprint(os.Stdout, m, inputShape, maxDepth)
}

// tableRow renders one record as table cells.
func tableRow(rec Record) []string {
	if rec.State == nil {
		return []string{rec.Name, rec.Type, "", "", "", ""}
	}
	return []string{
		rec.Name,
		rec.Type,
		formatShape(rec.State.OutputShape),
		formatOrigin(rec.State.Origin),
		strconv.Itoa(rec.State.Jump),
		strconv.Itoa(rec.State.ReceptiveField),
	}
}

func formatShape(shape [2]int) string {
	return fmt.Sprintf("(%d, %d)", shape[0], shape[1])
}

func formatOrigin(origin [2]float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", origin[0], origin[1])
}
