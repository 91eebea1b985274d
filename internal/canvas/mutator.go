package canvas

import "context"

// Mutator is the capability interface the command core writes through. The
// authoritative object store lives outside this service; Store is the
// in-process implementation used by the server and tests, but anything
// satisfying Mutator (a realtime sync client, a recording fake) can be
// substituted.
//
// Snapshot returns objects in creation order; resolver tie-breaking depends
// on that ordering. Mutations return the updated object, or ErrNotFound.
type Mutator interface {
	Snapshot(ctx context.Context) []Object
	Create(ctx context.Context, kind Kind, attrs Attrs) (*Object, error)
	Move(ctx context.Context, id string, x, y float64) (*Object, error)
	Resize(ctx context.Context, id string, attrs Attrs) (*Object, error)
	Recolor(ctx context.Context, id string, fill string) (*Object, error)
	Retext(ctx context.Context, id string, text string) (*Object, error)
	Delete(ctx context.Context, id string) (*Object, error)
}
