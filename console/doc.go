// Package console renders demo cases and run outcomes for the terminal.
//
// The formats are those of config.Formats. Text prints styled headings with
// one value per line and optionally splits long sections into pages. JSON
// prints machine-readable documents; for runs it prints the whole report
// once at the end.
package console
