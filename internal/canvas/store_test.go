package canvas_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/pagination"
)

func newStore() *canvas.Store {
	return canvas.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T { return &v }

func TestCreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		kind       canvas.Kind
		wantWidth  float64
		wantHeight float64
	}{
		{"rectangle", canvas.KindRectangle, 100, 100},
		{"ellipse", canvas.KindEllipse, 100, 100},
		{"text", canvas.KindText, 160, 24},
		{"text-input", canvas.KindTextInput, 240, 40},
		{"line", canvas.KindLine, 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			o, err := store.Create(ctx, tt.kind, canvas.Attrs{})
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}

			if o.Width != tt.wantWidth || o.Height != tt.wantHeight {
				t.Errorf("extent: got %vx%v, want %vx%v", o.Width, o.Height, tt.wantWidth, tt.wantHeight)
			}
			if o.Fill != design.Gray {
				t.Errorf("default fill: got %s, want %s", o.Fill, design.Gray)
			}
			if o.ID.String() == "" {
				t.Error("id should be assigned")
			}
		})
	}
}

func TestCreateSnapsPosition(t *testing.T) {
	store := newStore()

	o, err := store.Create(context.Background(), canvas.KindRectangle, canvas.Attrs{
		X: ptr(101.0),
		Y: ptr(99.0),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if o.X != 104 || o.Y != 96 {
		t.Errorf("position: got (%v, %v), want (104, 96)", o.X, o.Y)
	}
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	store := newStore()

	_, err := store.Create(context.Background(), canvas.Kind("hexagon"), canvas.Attrs{})
	if !errors.Is(err, canvas.ErrInvalidKind) {
		t.Errorf("error = %v, want ErrInvalidKind", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.Create(ctx, canvas.KindRectangle, canvas.Attrs{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	snapshot := store.Snapshot(ctx)
	snapshot[0].X = 9999

	current, err := store.Find(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if current.X == 9999 {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestSnapshotPreservesCreationOrder(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	first, _ := store.Create(ctx, canvas.KindRectangle, canvas.Attrs{})
	second, _ := store.Create(ctx, canvas.KindEllipse, canvas.Attrs{})
	third, _ := store.Create(ctx, canvas.KindText, canvas.Attrs{})

	snapshot := store.Snapshot(ctx)
	if len(snapshot) != 3 {
		t.Fatalf("snapshot length: got %d, want 3", len(snapshot))
	}
	if snapshot[0].ID != first.ID || snapshot[1].ID != second.ID || snapshot[2].ID != third.ID {
		t.Error("snapshot order should match creation order")
	}
}

func TestMutations(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	o, err := store.Create(ctx, canvas.KindRectangle, canvas.Attrs{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id := o.ID.String()

	t.Run("move", func(t *testing.T) {
		moved, err := store.Move(ctx, id, 200, 300)
		if err != nil {
			t.Fatalf("move failed: %v", err)
		}
		if moved.X != 200 || moved.Y != 300 {
			t.Errorf("position: got (%v, %v), want (200, 300)", moved.X, moved.Y)
		}
	})

	t.Run("resize", func(t *testing.T) {
		resized, err := store.Resize(ctx, id, canvas.Attrs{Width: ptr(320.0)})
		if err != nil {
			t.Fatalf("resize failed: %v", err)
		}
		if resized.Width != 320 {
			t.Errorf("width: got %v, want 320", resized.Width)
		}
		if resized.Height != 100 {
			t.Errorf("height should be untouched: got %v", resized.Height)
		}
	})

	t.Run("recolor", func(t *testing.T) {
		recolored, err := store.Recolor(ctx, id, design.Green)
		if err != nil {
			t.Fatalf("recolor failed: %v", err)
		}
		if recolored.Fill != design.Green {
			t.Errorf("fill: got %s, want %s", recolored.Fill, design.Green)
		}
	})

	t.Run("retext", func(t *testing.T) {
		retexted, err := store.Retext(ctx, id, "Submit")
		if err != nil {
			t.Fatalf("retext failed: %v", err)
		}
		if retexted.Text != "Submit" {
			t.Errorf("text: got %q, want Submit", retexted.Text)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := store.Delete(ctx, id); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if store.Len() != 0 {
			t.Errorf("len after delete: got %d, want 0", store.Len())
		}
		if _, err := store.Find(ctx, id); !errors.Is(err, canvas.ErrNotFound) {
			t.Errorf("find after delete = %v, want ErrNotFound", err)
		}
	})
}

func TestMutationsOnMissingObject(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	if _, err := store.Move(ctx, "no-such-id", 0, 0); !errors.Is(err, canvas.ErrNotFound) {
		t.Errorf("move = %v, want ErrNotFound", err)
	}
	if _, err := store.Delete(ctx, "no-such-id"); !errors.Is(err, canvas.ErrNotFound) {
		t.Errorf("delete = %v, want ErrNotFound", err)
	}
}

func TestResizeEllipseSyncsExtent(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	o, _ := store.Create(ctx, canvas.KindEllipse, canvas.Attrs{})
	resized, err := store.Resize(ctx, o.ID.String(), canvas.Attrs{RadiusX: ptr(80.0), RadiusY: ptr(40.0)})
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	if resized.Width != 160 || resized.Height != 80 {
		t.Errorf("extent: got %vx%v, want 160x80", resized.Width, resized.Height)
	}
}

func TestList(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	store.Create(ctx, canvas.KindRectangle, canvas.Attrs{Fill: ptr(design.Blue)})
	store.Create(ctx, canvas.KindRectangle, canvas.Attrs{Fill: ptr(design.Red)})
	store.Create(ctx, canvas.KindEllipse, canvas.Attrs{Fill: ptr(design.Blue)})

	t.Run("kind filter", func(t *testing.T) {
		page := pagination.PageRequest{}
		page.Normalize(cfg)

		result, err := store.List(ctx, page, canvas.Filters{Kind: canvas.KindRectangle})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("total: got %d, want 2", result.Total)
		}
	})

	t.Run("fill filter", func(t *testing.T) {
		page := pagination.PageRequest{}
		page.Normalize(cfg)

		result, err := store.List(ctx, page, canvas.Filters{Fill: design.Blue})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("total: got %d, want 2", result.Total)
		}
	})

	t.Run("description search", func(t *testing.T) {
		page := pagination.PageRequest{Search: ptr("blue rectangle")}
		page.Normalize(cfg)

		result, err := store.List(ctx, page, canvas.Filters{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("total: got %d, want 1", result.Total)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page := pagination.PageRequest{Page: 2, PageSize: 2}
		page.Normalize(cfg)

		result, err := store.List(ctx, page, canvas.Filters{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if result.Total != 3 || len(result.Data) != 1 {
			t.Errorf("page 2: total=%d len=%d, want total=3 len=1", result.Total, len(result.Data))
		}
	})

	t.Run("sort by kind descending", func(t *testing.T) {
		page := pagination.PageRequest{Sort: pagination.SortFields(pagination.ParseSortFields("-kind"))}
		page.Normalize(cfg)

		result, err := store.List(ctx, page, canvas.Filters{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if result.Data[0].Kind != canvas.KindRectangle {
			t.Errorf("first kind: got %s, want rectangle", result.Data[0].Kind)
		}
	})
}
