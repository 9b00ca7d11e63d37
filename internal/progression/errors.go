package progression

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by every engine operation invoked before
// Initialize has loaded a catalog.
var ErrNotInitialized = errors.New("progression engine not initialized")

// UnknownModuleError reports a caller-supplied module ID that does not exist
// in the loaded catalog. Only root-level lookups produce it; dangling
// prerequisite references encountered mid-traversal are silently skipped —
// a bad caller argument is a programming bug worth surfacing, while a bad
// authored reference must not take the whole engine down.
type UnknownModuleError struct {
	ID string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module: %q", e.ID)
}

// IsUnknownModule reports whether err is an UnknownModuleError.
func IsUnknownModule(err error) bool {
	var ue *UnknownModuleError
	return errors.As(err, &ue)
}
