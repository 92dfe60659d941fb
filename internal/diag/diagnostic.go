package diag

// Diagnostic is one finding. Subject is the qualified name the finding is
// about ("namespace.name", a bare namespace name, or a file path during
// loading).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Subject  string
	Message  string
}
