package vocabulary

import (
	"fmt"
	"strings"
)

// PartialAddError reports a selection that was stored only in part. Words
// are written one by one in display order without a transaction, so Added
// lists what is already in the user's vocabulary.
type PartialAddError struct {
	Added  []string
	Failed string
	Err    error
}

func (e *PartialAddError) Error() string {
	if len(e.Added) == 0 {
		return fmt.Sprintf("add %q to vocabulary: %v", e.Failed, e.Err)
	}
	return fmt.Sprintf("add %q to vocabulary after storing %s: %v", e.Failed, strings.Join(e.Added, ", "), e.Err)
}

func (e *PartialAddError) Unwrap() error { return e.Err }
