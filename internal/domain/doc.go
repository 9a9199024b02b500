// Package domain models hourly air-quality observations from an urban
// monitoring station and the transformations the dashboard applies to them.
//
// # Data Source
//
// Readings come from the UCI "Air Quality" dataset: a single semicolon-
// delimited CSV of hourly averages recorded by a multisensor device in an
// Italian city, covering gas concentrations (CO, NMHC, benzene, NOx, NO2,
// O3 sensor responses), temperature, and humidity. One process run loads
// one file; the table never changes after cleaning.
//
// # Source Format Conventions
//
// Dates and times:
//
//	Date  DD/MM/YYYY   e.g. "10/03/2004"
//	Time  HH.MM.SS     e.g. "18.00.00" — periods, not colons. This is how
//	                   the source file is encoded and is preserved
//	                   verbatim; the cleaner owns the translation.
//
// A full timestamp exists only for rows where both fields parse. A row with
// a bad date or bad time keeps whatever half did parse; it is never dropped.
//
// Decimal separator:
//
//	Numeric cells use a comma as the decimal separator ("2,6" = 2.6).
//	The cleaner normalizes comma to dot before parsing, so dot-formatted
//	input is accepted unchanged and cleaning is idempotent.
//
// Sentinel values:
//
//	-200 in any numeric cell means "sensor did not report". It appears both
//	as the bare integer "-200" and in locale forms such as "-200,0". All
//	forms become the explicit absent Value before any statistic is
//	computed; the number -200 must never survive cleaning.
//
// Unknown values:
//
//	Any cell that still fails numeric coercion after sentinel and locale
//	handling becomes absent, silently. Sensor exports contain occasional
//	garbage and a partial row is still useful.
//
// # Statistics
//
// Standard deviation uses the sample (n-1) formula. Every statistic is
// computed over non-absent values only; a statistic over zero observations
// is absent, never zero.
package domain
