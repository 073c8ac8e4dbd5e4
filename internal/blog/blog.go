package blog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orgball2608/crypto-blog/internal/domain"
)

// State is a point-in-time copy of what the page shows.
type State struct {
	Posts   []domain.Post
	Loading bool
	Form    domain.PostForm
	Errors  domain.FieldErrors
}

// Controller owns the page state and drives the backend. Loading goes
// idle -> loading -> idle on every fetch or submit; it is a display flag,
// not a lock, so overlapping calls are not serialised.
type Controller interface {
	// Mount runs the initial fetch. Only the first call has an effect.
	Mount(ctx context.Context)

	// FetchPosts replaces the post list with the backend's on success and
	// keeps the old list on failure.
	FetchPosts(ctx context.Context)

	// Submit validates form and, when valid, adds it as a post. It returns a
	// *ValidationError when a field is missing and nil otherwise; backend
	// failures are logged, never returned.
	Submit(ctx context.Context, form domain.PostForm) error

	State() State
}

// ValidationError lists the fields that blocked a submit.
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid post form: %s", strings.Join(names, ", "))
}
