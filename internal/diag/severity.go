package diag

// Severity is the closed set of diagnostic kinds from spec §3/§7. It doubles
// as "kind": every Diagnostic carries exactly one of these.
type Severity uint8

const (
	// SevError is a standard, recoverable compile error.
	SevError Severity = iota
	// SevHardError is an error a pass could not recover from locally; it
	// still produces an Error-variant node so later passes keep running.
	SevHardError
	// SevInternalError flags a broken invariant (empty parser stack, missing
	// file after interning) rather than a user mistake.
	SevInternalError
	// SevWarning is a non-fatal issue worth surfacing.
	SevWarning
	// SevDeprecated flags use of a deprecated construct.
	SevDeprecated
	// SevInfo is purely informational.
	SevInfo
	// SevTip suggests an improvement without flagging a problem.
	SevTip
	// SevMeta carries tooling metadata not meant as user-facing feedback.
	SevMeta
	// SevSyntaxError is a parser-stage diagnostic.
	SevSyntaxError
	// SevTypeError is reserved for the (external) type-checking consumer of HIR.
	SevTypeError
	// SevResolutionError is a name-resolution failure.
	SevResolutionError
	// SevLint is a style observation.
	SevLint
	// SevLoweringError is an HIR-lowering failure.
	SevLoweringError
	// SevContext is a non-primary "while resolving X" breadcrumb, always
	// attached as a child of another diagnostic.
	SevContext
)

// Tier buckets a Severity into the three-level classification used for
// exit-code decisions and sort order (errors before warnings before info).
type Tier uint8

const (
	TierError Tier = iota
	TierWarning
	TierInfo
)

// Tier classifies the severity for ordering and HasErrors/HasWarnings checks.
func (s Severity) Tier() Tier {
	switch s {
	case SevError, SevHardError, SevInternalError, SevSyntaxError, SevTypeError,
		SevResolutionError, SevLoweringError:
		return TierError
	case SevWarning, SevDeprecated, SevLint:
		return TierWarning
	default:
		return TierInfo
	}
}

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevHardError:
		return "hard-error"
	case SevInternalError:
		return "internal-error"
	case SevWarning:
		return "warning"
	case SevDeprecated:
		return "deprecated"
	case SevInfo:
		return "info"
	case SevTip:
		return "tip"
	case SevMeta:
		return "meta"
	case SevSyntaxError:
		return "syntax-error"
	case SevTypeError:
		return "type-error"
	case SevResolutionError:
		return "resolution-error"
	case SevLint:
		return "lint"
	case SevLoweringError:
		return "lowering-error"
	case SevContext:
		return "context"
	default:
		return "unknown"
	}
}
