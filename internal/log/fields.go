package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldTxID       = "tx_id"
	FieldTxType     = "tx_type"
	FieldCategory   = "category"
	FieldDateFrom   = "date_from"
	FieldDateTo     = "date_to"
	FieldRowCount   = "row_count"
	FieldReloadSeq  = "reload_seq"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentAPI       = "api"
	ComponentDashboard = "dashboard"
	ComponentConfig    = "config"
	ComponentCLI       = "cli"
)

// Operations defines standard operation names
const (
	OpReload = "reload"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
	OpImport = "import"
)
