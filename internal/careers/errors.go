package careers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyProfile signals a profile with neither skills nor interests.
// The recommender refuses to score such a profile; callers surface this as
// a user-facing validation failure.
var ErrEmptyProfile = errors.New("profile has no skills or interests to match on")

// UnknownTargetError reports a skill-plan request for a career that does
// not exist in the catalog. ValidRoles helps the caller self-correct.
type UnknownTargetError struct {
	Target     string
	ValidRoles []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("career %q not found; valid careers: %s",
		e.Target, strings.Join(e.ValidRoles, ", "))
}
