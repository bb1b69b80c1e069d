package seeders

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aarondl/null/v8"
)

const csvDateFormat = "2006-01-02"

// openEndedDate is the sentinel the source dumps use for a still-active
// history row; it is stored as NULL.
const openEndedDate = "9999-01-01"

// readCSVFile reads a whole CSV file and drops the header row.
func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	return records[1:], nil
}

func parseEmpNo(field string) (int64, error) {
	empNo, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad employee number %q: %w", field, err)
	}
	return empNo, nil
}

func parseDate(field string) (time.Time, error) {
	t, err := time.Parse(csvDateFormat, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", field, err)
	}
	return t, nil
}

// parseNullDate treats an empty field and the open-ended sentinel as NULL.
func parseNullDate(field string) (null.Time, error) {
	if field == "" || field == openEndedDate {
		return null.Time{}, nil
	}
	t, err := parseDate(field)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}
