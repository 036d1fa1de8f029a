package service

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/limbo/chai/pkg/entity"
)

var csvHeader = []string{"id", "createdAt", "amount", "currency", "method", "shiftId", "note", "source"}

const csvTimeLayout = "2006-01-02T15:04:05.000Z"

// WriteTipsCSV writes tips in the order given, one row each, under a header.
// The source column is kept for compatibility and always empty.
func WriteTipsCSV(w io.Writer, tips []entity.Tip) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.New("writing csv header error: " + err.Error())
	}
	for _, tip := range tips {
		record := []string{
			tip.ID,
			tip.CreatedAt.UTC().Format(csvTimeLayout),
			strconv.FormatFloat(tip.Amount, 'f', -1, 64),
			tip.Currency,
			string(tip.Method),
			tip.ShiftID,
			tip.Note,
			"",
		}
		if err := cw.Write(record); err != nil {
			return errors.New("writing csv row error: " + err.Error())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.New("flushing csv error: " + err.Error())
	}
	return nil
}
