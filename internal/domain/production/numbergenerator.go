package production

import "context"

// NumberGenerator produces the human-readable sequential production
// number assigned at creation time.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
