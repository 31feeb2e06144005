package objfile

import "fmt"

// MalformedFaceError reports a face line whose mandatory vertex component
// is missing or not a number. The file is not written when this occurs.
type MalformedFaceError struct {
	LineNum int
	Raw     string
	Reason  string
}

func (e *MalformedFaceError) Error() string {
	return fmt.Sprintf("line:%d malformed face %q: %s", e.LineNum, e.Raw, e.Reason)
}

// InternalConsistencyError reports a kept face referencing an attribute
// index the renumber map has no entry for. This means the reference
// collection and compaction passes disagree (or the input references an
// attribute that was never declared) and the file is aborted rather than
// silently dropping the reference.
type InternalConsistencyError struct {
	Space    Type
	Index    int
	Declared int
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("internal consistency: %s index %d has no renumber entry (%d declared)",
		e.Space.Name(), e.Index, e.Declared)
}

func errMissingVertex(token string) error {
	return fmt.Errorf("token %q is missing the vertex index", token)
}

func errBadComponent(token, part string) error {
	return fmt.Errorf("token %q has non-numeric component %q", token, part)
}
