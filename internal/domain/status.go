package domain

// ImportStatus tracks a returns file picked up from the inbox directory.
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusDone       ImportStatus = "done"
	ImportStatusError      ImportStatus = "error"
)

// Filing statuses reported by the portal. Any other value is stored as-is.
const (
	FilingStatusFiled    = "Filed"
	FilingStatusNotFiled = "Not Filed"
)

// Generation statuses of the derived GSTR-1 data.
const (
	GenerationStatusInProgress = "In Progress"
	GenerationStatusGenerated  = "Generated"
	GenerationStatusFailed     = "Failed"
)
