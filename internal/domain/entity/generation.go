package entity

import "time"

// GenerationRun bitta muvaffaqiyatli generatsiya yozuvi
type GenerationRun struct {
	ID        string
	Path      string
	Rows      int
	CreatedAt time.Time
}

// WorkbookSummary faylni qayta o'qib olingan qisqacha ma'lumot
type WorkbookSummary struct {
	Path      string
	Sheets    []string
	Columns   []string
	RowCount  int        // header dan tashqari
	FirstRows [][]string // eng ko'pi 5 ta
	Err       error
}
