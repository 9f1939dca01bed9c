package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/model"
)

// Navigation targets of the error pages.
const (
	NotFoundPath = "/404"
	ErrorPath    = "/500"
)

// Backend is the data source the controllers read from. *groupie.Client
// implements it.
type Backend interface {
	Artists(ctx context.Context, q groupie.ArtistQuery) ([]model.Artist, error)
	Relations(ctx context.Context) ([]model.Relation, error)
	Events(ctx context.Context) ([]model.Event, error)
	Locations(ctx context.Context) ([]model.Location, error)
	SpotifyArtist(ctx context.Context, id model.ArtistID) (model.Artist, error)
	Search(ctx context.Context, q string) ([]model.SearchHit, error)
	ArtistsAndRelations(ctx context.Context) ([]model.Artist, []model.Relation, error)
}

// Redirect is a fatal page outcome: the page must navigate to Target.
type Redirect struct {
	Target string
	Cause  error
}

func (r *Redirect) Error() string {
	if r.Cause == nil {
		return "redirect to " + r.Target
	}
	return fmt.Sprintf("redirect to %s: %v", r.Target, r.Cause)
}

func (r *Redirect) Unwrap() error {
	return r.Cause
}

// NotFound redirects to the not-found page.
func NotFound(cause error) *Redirect {
	return &Redirect{Target: NotFoundPath, Cause: cause}
}

// Failure redirects to the generic error page.
func Failure(cause error) *Redirect {
	return &Redirect{Target: ErrorPath, Cause: cause}
}

// Resolve maps a page error to its navigation target. Nil maps to "".
// Missing entities map to /404 and everything else to /500.
func Resolve(err error) string {
	if err == nil {
		return ""
	}
	var r *Redirect
	if errors.As(err, &r) {
		return r.Target
	}
	if errors.Is(err, groupie.ErrNotFound) || http.IsNotFound(err) {
		return NotFoundPath
	}
	return ErrorPath
}

// errMissingID is the cause of a redirect for an absent id parameter.
var errMissingID = errors.New("missing id parameter")
