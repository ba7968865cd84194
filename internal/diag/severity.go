package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for reports that do not invalidate the parse.
	SevWarning Severity = iota
	// SevError is for reports about source the engine could not accept.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
