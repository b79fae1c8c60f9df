package timeseries

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVHeader is the fixed header line of the serialized format.
const CSVHeader = "date,category,value"

// DateFormat is the layout used for the date column.
const DateFormat = "2006-01-02"

// ToCSV serializes records to CSV text with the fixed header
// `date,category,value` and one line per record in input order.
//
// Fields are comma-joined without quoting or escaping; embedded commas in
// category labels are a documented limitation of the format. Returns an
// error wrapping ErrInvalidRecord if any record lacks a date or category or
// carries a non-finite value.
func ToCSV(records []Record) (string, error) {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteString("\n")

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return "", err
		}
		b.WriteString(r.Date.Format(DateFormat))
		b.WriteString(",")
		b.WriteString(r.Category)
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(r.Value, 'f', -1, 64))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// ParseCSV parses text produced by ToCSV back into records. Index is
// assigned from line order, so a round-trip reproduces dates, categories,
// and values exactly but not the original indices.
func ParseCSV(text string) ([]Record, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != CSVHeader {
		return nil, errors.New("missing or malformed CSV header")
	}

	var records []Record
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", i+2, len(fields))
		}

		date, err := time.Parse(DateFormat, strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}

		records = append(records, Record{
			Date:     date,
			Category: fields[1],
			Value:    value,
			Index:    len(records),
		})
	}

	return records, nil
}

// WriteCSV serializes records and writes them to a file.
func WriteCSV(records []Record, filename string) error {
	text, err := ToCSV(records)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(text), 0644)
}

// ReadCSV loads records from a CSV file written by WriteCSV.
func ReadCSV(filename string) ([]Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCSV(string(data))
}
