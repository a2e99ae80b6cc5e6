package domain

import "time"

type Attachment struct {
	ID                string    `db:"id"`
	FileName          string    `db:"file_name"`
	FileURL           string    `db:"file_url"`
	AttachedToDoctype string    `db:"attached_to_doctype"`
	AttachedToName    string    `db:"attached_to_name"`
	AttachedToField   string    `db:"attached_to_field"`
	IsPrivate         bool      `db:"is_private"`
	FileSize          int64     `db:"file_size"`
	CreatedAt         time.Time `db:"created_at"`
	ModifiedAt        time.Time `db:"modified_at"`
}
