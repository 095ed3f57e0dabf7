package searcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"
)

var (
	ErrInvalidFilter      = errors.New("a region or a landscape is required")
	ErrUnknownRegion      = errors.New("unknown region")
	ErrEmptyQuery         = errors.New("no query could be built for the selected filters")
	ErrNoQueriesGenerated = errors.New("no query could be built for any region")
	// ErrTransport is returned, wrapped, when the overpass round trip of a single-region search fails.
	ErrTransport = overpass.ErrTransport
)

// UnknownRegionError matches ErrUnknownRegion and carries close region names.
type UnknownRegionError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownRegionError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrUnknownRegion, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownRegionError) Is(target error) bool { return target == ErrUnknownRegion }
