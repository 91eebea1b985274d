package canvas

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/pagination"
)

// Filters holds optional criteria for narrowing object listings.
type Filters struct {
	Kind Kind   `json:"kind,omitempty"`
	Fill string `json:"fill,omitempty"`
}

// FiltersFromQuery parses filter criteria from URL query values.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		Kind: Kind(values.Get("kind")),
		Fill: values.Get("fill"),
	}
}

func (f Filters) matches(o *Object) bool {
	if f.Kind != "" && o.Kind != f.Kind {
		return false
	}
	if f.Fill != "" && !strings.EqualFold(f.Fill, o.Fill) {
		return false
	}
	return true
}

// List returns a page of objects matching the filters. Search matches against
// the object's natural-language description, so queries like "blue rectangle"
// work the same way references in commands do.
func (s *Store) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Object], error) {
	snapshot := s.Snapshot(ctx)

	matched := make([]Object, 0, len(snapshot))
	for i := range snapshot {
		o := &snapshot[i]
		if !filters.matches(o) {
			continue
		}
		if page.Search != nil && !strings.Contains(strings.ToLower(o.Describe()), strings.ToLower(*page.Search)) {
			continue
		}
		matched = append(matched, *o)
	}

	sortObjects(matched, page.Sort)

	data, total := pagination.Slice(matched, page)
	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

// sortObjects applies a stable multi-field sort. Unknown fields are ignored,
// preserving creation order.
func sortObjects(objects []Object, fields []pagination.SortField) {
	if len(fields) == 0 {
		return
	}

	sort.SliceStable(objects, func(i, j int) bool {
		for _, f := range fields {
			cmp := compareField(&objects[i], &objects[j], f.Field)
			if cmp == 0 {
				continue
			}
			if f.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareField(a, b *Object, field string) int {
	switch field {
	case "x":
		return compareFloat(a.X, b.X)
	case "y":
		return compareFloat(a.Y, b.Y)
	case "width":
		return compareFloat(a.Width, b.Width)
	case "height":
		return compareFloat(a.Height, b.Height)
	case "area":
		return compareFloat(a.Area(), b.Area())
	case "kind":
		return strings.Compare(string(a.Kind), string(b.Kind))
	case "fill":
		return strings.Compare(a.Fill, b.Fill)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
