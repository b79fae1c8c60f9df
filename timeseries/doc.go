// Package timeseries provides the record data model and CSV serialization.
//
// This package defines the Record type produced by the generator and consumed
// by the trend analyzer, along with grouping and ordering helpers and a fixed
// three-column CSV format.
//
// # Records
//
// A Record is one step of a generated series:
//
//	rec := timeseries.Record{
//	    Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
//	    Value:    1000,
//	    Category: "north",
//	    Index:    0,
//	}
//
// Records are treated as immutable once produced; helpers that reorder
// records return new slices and leave their input untouched.
//
// # CSV
//
// Serialize and parse records with the fixed `date,category,value` schema:
//
//	text, err := timeseries.ToCSV(records)
//	back, err := timeseries.ParseCSV(text)
//
//	// File convenience wrappers
//	err = timeseries.WriteCSV(records, "series.csv")
//	records, err = timeseries.ReadCSV("series.csv")
//
// Fields are joined with commas and never quoted or escaped; a category label
// containing a comma will produce a malformed line. This is a documented
// limitation of the format, not a defect.
//
// # Grouping and Ordering
//
// Work with per-category groups:
//
//	groups := timeseries.GroupByCategory(records)
//	sorted := timeseries.SortByDate(groups["north"])
//	labels := timeseries.Categories(records)
package timeseries
