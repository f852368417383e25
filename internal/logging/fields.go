package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldConfig     = "config"
	FieldDuration = "duration"

	// Build fields.
	FieldPages        = "pages"
	FieldPagesWritten = "pages_written"
	FieldIndexDocs    = "index_docs"
	FieldWatch        = "watch"

	// Search fields.
	FieldQuery   = "query"
	FieldResults = "results"
	FieldLimit   = "limit"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
