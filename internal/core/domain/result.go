package domain

// Severity classifies progress trail entries.
type Severity int

const (
	// SeverityDebug is a terse technical trace entry.
	SeverityDebug Severity = iota

	// SeverityInfo is a user-facing progress entry.
	SeverityInfo

	// SeverityWarning is a recoverable fault. Warnings also produce an
	// ErrorRecord on the result.
	SeverityWarning
)

// String returns the severity label.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// LogEntry is one line of the progress trail.
type LogEntry struct {
	Message  string
	Severity Severity
}

// ErrorRecord captures one recoverable fault. At most one of File and
// Folder is set; session faults carry neither.
type ErrorRecord struct {
	// Message describes the fault.
	Message string

	// File is the path of the failed file, if the fault was file-scoped.
	File string

	// Folder is the folder path, if the fault aborted an enumeration.
	Folder string
}

// LoadResult is the complete outcome of one Load invocation. All four
// collections are built during the call and returned together; a result is
// never reused across invocations.
//
// The returned Records are partial by design: callers must inspect
// InvalidFiles and Errors to know what was skipped or failed. Non-empty
// Records with empty Errors is the only fully-successful signal.
type LoadResult struct {
	// RunID uniquely identifies this load invocation. The progress trail
	// opens with its short form, so a result can be correlated with
	// external process logs.
	RunID string

	// Records are the extracted records in path order.
	Records []Record

	// InvalidFiles are paths rejected by the extension allow-list. They are
	// a classification outcome, not faults.
	InvalidFiles []string

	// Errors are the recoverable faults encountered during the load.
	Errors []ErrorRecord

	// Progress is the full progress trail.
	Progress []LogEntry
}

// Details returns the progress entries at or above the given severity.
// Used to separate terse technical traces from user-facing summaries.
func (r *LoadResult) Details(min Severity) []LogEntry {
	var out []LogEntry
	for _, e := range r.Progress {
		if e.Severity >= min {
			out = append(out, e)
		}
	}
	return out
}

// AccountInfo identifies the authenticated account and its namespaces.
type AccountInfo struct {
	// AccountID is the opaque account identifier.
	AccountID string

	// Email is the account email address.
	Email string

	// DisplayName is the human-readable account name.
	DisplayName string

	// RootNamespaceID is the account root namespace. For team members this
	// is the team space; for individual accounts it equals the home
	// namespace.
	RootNamespaceID string

	// HomeNamespaceID is the personal home namespace.
	HomeNamespaceID string
}

// FolderSummary describes one top-level folder, used by UI pickers.
type FolderSummary struct {
	// Name is the folder's display name.
	Name string

	// Path is the display path of the folder.
	Path string
}
