package models

// ValidationError represents invalid command parameters,
// detected when the command is constructed
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// StructuralError represents a script that fails the builder's
// structure rules, detected at build time
type StructuralError struct {
	Rule    string
	Message string
}

func (e *StructuralError) Error() string {
	return e.Rule + ": " + e.Message
}

// IOError represents a failure to write or remove the transient script file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "failed to " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying filesystem error
func (e *IOError) Unwrap() error {
	return e.Err
}
