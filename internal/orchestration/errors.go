package orchestration

import (
	"fmt"

	"github.com/valmesh/valctl/internal/manage"
)

// ConflictError reports a start request whose management type contradicts
// the backend of an already-running cluster. It is never resolved silently;
// the operator has to stop the cluster before switching backends.
type ConflictError struct {
	Recorded  manage.Backend
	Requested manage.Backend
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot use two different management types: already running %q (requested %q); stop the cluster first",
		e.Recorded, e.Requested)
}
