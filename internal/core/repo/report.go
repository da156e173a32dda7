package repo

// Kind is the outcome variant of an operation
type Kind int

const (
	// KindOK means the operation completed
	KindOK Kind = iota
	// KindNoOp means there was nothing to do
	KindNoOp
	// KindError means the operation failed; Category says why
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNoOp:
		return "noop"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Category classifies an error report
type Category string

const (
	CategoryNone           Category = ""
	CategoryPathNotFound   Category = "path_not_found"
	CategoryNotARepository Category = "not_a_repository"
	CategoryInvalidPath    Category = "invalid_path"
	CategoryCommandFailed  Category = "command_failed"
	CategoryUnexpected     Category = "unexpected"
)

// Step names a stage of Synchronize
type Step string

const (
	StepAdd    Step = "add"
	StepStatus Step = "status"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// Report is the result of one executor operation. Operations always return
// a Report and never an error; failures are carried as KindError.
type Report struct {
	Kind     Kind     `json:"kind"`
	Category Category `json:"category,omitempty"`
	// Step is the Synchronize stage that failed. Earlier stages stay applied.
	Step    Step   `json:"step,omitempty"`
	Message string `json:"message"`
	// Output is captured command output: status lines for Inspect, stderr
	// for a failed command.
	Output string `json:"output,omitempty"`
}

// IsError reports whether r is an error report
func (r Report) IsError() bool {
	return r.Kind == KindError
}

// Text renders the report as a single line prefixed with a status icon,
// the form returned to tool clients.
func (r Report) Text() string {
	switch r.Kind {
	case KindOK:
		if r.Output != "" {
			return "📋 Git " + r.Message
		}
		return "✅ " + r.Message
	case KindNoOp:
		return "ℹ️ " + r.Message
	}

	switch r.Category {
	case CategoryCommandFailed:
		return "❌ Git error: " + r.Message
	case CategoryUnexpected:
		return "❌ Unexpected error: " + r.Message
	case CategoryInvalidPath:
		return "❌ " + r.Message
	default:
		return "❌ Error: " + r.Message
	}
}

func ok(message string) Report {
	return Report{Kind: KindOK, Message: message}
}

func noop(message string) Report {
	return Report{Kind: KindNoOp, Message: message}
}

func failure(category Category, message string) Report {
	return Report{Kind: KindError, Category: category, Message: message}
}
