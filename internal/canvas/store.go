package canvas

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/lifecycle"
)

// Store is an in-memory Mutator implementation. Objects are held in creation
// order; snapshots are defensive copies so the command core can treat them as
// immutable.
type Store struct {
	mu      sync.RWMutex
	objects []*Object
	index   map[string]*Object
	logger  *slog.Logger
}

// NewStore creates an empty Store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		index:  make(map[string]*Object),
		logger: logger.With("system", "canvas"),
	}
}

// Start registers the store with the lifecycle coordinator. The in-memory
// store has no external connection to open; it reports ready immediately and
// logs its object count on shutdown.
func (s *Store) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		s.logger.Info("canvas store ready")
	})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("canvas store closed", "objects", s.Len())
	})
	return nil
}

// Len returns the current object count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Snapshot returns a copy of all objects in creation order.
func (s *Store) Snapshot(_ context.Context) []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Object, len(s.objects))
	for i, o := range s.objects {
		snapshot[i] = *o
	}
	return snapshot
}

// Find returns a copy of the object with the given id.
func (s *Store) Find(_ context.Context, id string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	copied := *o
	return &copied, nil
}

// Create adds an object of the given kind, grid-snapping its position and
// filling unset extent fields with kind defaults.
func (s *Store) Create(_ context.Context, kind Kind, attrs Attrs) (*Object, error) {
	if !ValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	o := &Object{
		ID:        uuid.New(),
		Kind:      kind,
		Fill:      design.Gray,
		CreatedAt: time.Now(),
	}
	applyAttrs(o, attrs)
	defaultExtent(o)
	o.X = design.Snap(o.X)
	o.Y = design.Snap(o.Y)

	s.mu.Lock()
	s.objects = append(s.objects, o)
	s.index[o.ID.String()] = o
	s.mu.Unlock()

	s.logger.Info("object created", "id", o.ID, "kind", o.Kind, "x", o.X, "y", o.Y)

	copied := *o
	return &copied, nil
}

// Move repositions an object.
func (s *Store) Move(_ context.Context, id string, x, y float64) (*Object, error) {
	return s.update(id, func(o *Object) {
		o.X = x
		o.Y = y
	})
}

// Resize applies the non-nil extent fields from attrs.
func (s *Store) Resize(_ context.Context, id string, attrs Attrs) (*Object, error) {
	return s.update(id, func(o *Object) {
		applyAttrs(o, attrs)
		if o.Kind == KindEllipse {
			o.Width = o.RadiusX * 2
			o.Height = o.RadiusY * 2
		}
	})
}

// Recolor changes an object's fill.
func (s *Store) Recolor(_ context.Context, id string, fill string) (*Object, error) {
	return s.update(id, func(o *Object) {
		o.Fill = fill
	})
}

// Retext replaces an object's literal text.
func (s *Store) Retext(_ context.Context, id string, text string) (*Object, error) {
	return s.update(id, func(o *Object) {
		o.Text = text
	})
}

// Delete removes an object and returns its final state.
func (s *Store) Delete(_ context.Context, id string) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(s.index, id)
	for i, candidate := range s.objects {
		if candidate == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}

	s.logger.Info("object deleted", "id", id, "kind", o.Kind)

	copied := *o
	return &copied, nil
}

func (s *Store) update(id string, apply func(*Object)) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	apply(o)
	copied := *o
	return &copied, nil
}

func applyAttrs(o *Object, attrs Attrs) {
	if attrs.X != nil {
		o.X = *attrs.X
	}
	if attrs.Y != nil {
		o.Y = *attrs.Y
	}
	if attrs.Width != nil {
		o.Width = *attrs.Width
	}
	if attrs.Height != nil {
		o.Height = *attrs.Height
	}
	if attrs.RadiusX != nil {
		o.RadiusX = *attrs.RadiusX
	}
	if attrs.RadiusY != nil {
		o.RadiusY = *attrs.RadiusY
	}
	if attrs.Fill != nil {
		o.Fill = *attrs.Fill
	}
	if attrs.Text != nil {
		o.Text = *attrs.Text
	}
	if attrs.FontSize != nil {
		o.FontSize = *attrs.FontSize
	}
}
