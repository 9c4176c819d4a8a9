package sqlscript

// Kind declares how the console executes a script. It is decided by where
// the file was discovered, never by pattern-matching the SQL text.
type Kind string

const (
	// KindViewDefinition creates or replaces a view; after a successful run
	// the console selects from the view and shows the rows.
	KindViewDefinition Kind = "view-definition"
	// KindScript runs as-is; rows are shown when the statement returns any.
	KindScript Kind = "script"
)

// Script is one registered operator script, keyed by its filename stem.
type Script struct {
	Key      string
	Kind     Kind
	ViewName string
	SQL      string
}

// Registry is the immutable set of scripts discovered at startup.
type Registry interface {
	List() []Script
	Get(key string) (Script, bool)
}
