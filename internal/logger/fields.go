package logger

// Field names for structured logging. Use these instead of raw strings.
const (
	FieldFile     = "file"
	FieldClass    = "class"
	FieldType     = "type"
	FieldFunction = "function"
	FieldPackage  = "package"
	FieldModule   = "module"
	FieldCount    = "count"
	FieldBytes    = "bytes"
	FieldRoute    = "route"
	FieldCode     = "code"
	FieldError    = "error"
)
