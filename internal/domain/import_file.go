package domain

import "time"

type ImportFile struct {
	Name         string       `db:"name"`
	GSTIN        string       `db:"gstin"`
	Status       ImportStatus `db:"status"`
	ErrorMessage string       `db:"error_message"`
	ProcessedAt  *time.Time   `db:"processed_at"`
}

// ReturnsBatch is a decoded inbox file.
type ReturnsBatch struct {
	Filename string
	GSTIN    string
	Info     *ReturnsInfo // filled in case of a success
	Error    error        // filled in case of an error
}
