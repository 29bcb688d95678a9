package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/toolstack/overtimeit/internal/entry"
)

// csvHeader is the column contract of the CSV export.
var csvHeader = []string{"date", "start", "end", "breakMins", "workMins", "workHours", "note"}

// WriteCSV writes the given entries, usually the filtered view, as CSV.
// workHours is workMins/60 with two decimals; quoting of commas, quotes and
// newlines follows encoding/csv.
func WriteCSV(w io.Writer, entries []entry.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.Date,
			e.Start,
			e.End,
			strconv.Itoa(e.BreakMins),
			strconv.Itoa(e.WorkMins),
			strconv.FormatFloat(float64(e.WorkMins)/60.0, 'f', 2, 64),
			e.Note,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
