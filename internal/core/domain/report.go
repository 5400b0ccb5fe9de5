package domain

// RowStatus drives how a renderer highlights a row.
type RowStatus int

const (
	RowPlain RowStatus = iota
	RowOK
	RowWarn
	RowError
	RowInfo
)

type Row struct {
	Cells  []string
	Status RowStatus
}

// Report is a renderer-neutral view of a command result. Text renderers use
// Columns and Rows; structured renderers encode Data.
type Report struct {
	Title   string
	Columns []string
	Rows    []Row
	Data    any
	// Empty is printed instead of a table when there are no rows.
	Empty string
}
