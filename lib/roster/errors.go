package roster

import (
	"errors"
	"fmt"
)

// Fatal load conditions: with either of these there is nothing useful
// to render, so the whole run must abort.
var (
	ErrNoInput      = errors.New("no roster input sources")
	ErrEmptyDataset = errors.New("roster sources contained no usable rows")
)

// DegenerateSlugError reports a player or team whose name sanitized down
// to an empty identifier.
type DegenerateSlugError struct {
	Namespace string
	Entity    string
}

func (e *DegenerateSlugError) Error() string {
	return fmt.Sprintf("%s %q sanitizes to an empty slug", e.Namespace, e.Entity)
}

// SlugCollisionError reports two distinct entities mapping to the same
// output page. Naming both sides matters: silently letting one page
// overwrite the other is the failure mode this check exists to prevent.
type SlugCollisionError struct {
	Namespace string
	Slug      string
	First     string
	Second    string
}

func (e *SlugCollisionError) Error() string {
	return fmt.Sprintf(
		"%s slug collision: %q and %q both sanitize to %q",
		e.Namespace, e.First, e.Second, e.Slug,
	)
}
