package domain

import (
	"fmt"
	"time"
)

// Column names for the two textual fields of the source file. All other
// known columns are numeric variables.
const (
	ColDate = "Date"
	ColTime = "Time"
)

// Tracked variable columns, reported individually by VariableMetrics.
const (
	VarCO          = "CO(GT)"
	VarTemperature = "T"
	VarRelHumidity = "RH"
	VarAbsHumidity = "AH"
)

// NumericVariables enumerates the known numeric columns of the source
// dataset, in file order. Columns outside this list pass through the
// cleaner untouched as text.
var NumericVariables = []string{
	VarCO,
	"PT08.S1(CO)",
	"NMHC(GT)",
	"C6H6(GT)",
	"PT08.S2(NMHC)",
	"NOx(GT)",
	"PT08.S3(NOx)",
	"NO2(GT)",
	"PT08.S4(NO2)",
	"PT08.S5(O3)",
	VarTemperature,
	VarRelHumidity,
	VarAbsHumidity,
}

var numericVariableSet = func() map[string]bool {
	m := make(map[string]bool, len(NumericVariables))
	for _, v := range NumericVariables {
		m[v] = true
	}
	return m
}()

// IsNumericVariable reports whether name is one of the known numeric columns.
func IsNumericVariable(name string) bool {
	return numericVariableSet[name]
}

// ClockTime is a time of day with second granularity. The zero value is absent.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
	Valid  bool
}

func (c ClockTime) String() string {
	if !c.Valid {
		return "absent"
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Record is one hourly observation.
//
// Fields holds the raw cell text of every column as loaded, keyed by column
// name; unknown columns live only here. Date, Clock, Timestamp and Values
// are populated by Clean. A zero Date or Timestamp means absent.
type Record struct {
	Date      time.Time
	Clock     ClockTime
	Timestamp time.Time
	Values    map[string]Value
	Fields    map[string]string
}

// Table is an ordered set of records sharing one column set. The column set
// is fixed at load time; cleaning never adds or removes columns.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether the table carries the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// NumericColumns returns the known numeric columns present in the table,
// in table column order.
func (t Table) NumericColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if IsNumericVariable(c) {
			cols = append(cols, c)
		}
	}
	return cols
}
