package pager

import (
	"errors"
	"fmt"
)

// Simple builds a cursor-style navigation with only previous/next controls,
// for callers whose total page count is expensive or impossible to compute
// (opaque cursors, streaming APIs). Previous is disabled on the first page;
// next is disabled when haveNext is false.
func Simple(page int, haveNext bool, gen LinkGenerator) (Nav, error) {
	if page < 0 {
		return Nav{}, fmt.Errorf("%w: page %d is negative", ErrInvalidPage, page)
	}
	if gen == nil {
		return Nav{}, errors.New("pager: link generator is required")
	}

	links := []Link{
		boundaryLink(LabelPrev, page-1, page > 0, gen),
		boundaryLink(LabelNext, page+1, haveNext, gen),
	}
	return Nav{Links: links, Min: page, Max: page + 1}, nil
}
