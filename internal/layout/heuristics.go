package layout

import "github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"

// roleRule identifies elements of a role by kind and extent ranges. A zero
// max means unbounded.
type roleRule struct {
	kinds        []canvas.Kind
	minW, maxW   float64
	minH, maxH   float64
	minFont      float64
	maxFont      float64
	textRequired bool
}

// compositeRules holds the per-composite sanity heuristics. One table entry
// per registered composite replaces per-type branching in the validator.
type compositeRules struct {
	axis             Axis
	minContainerArea float64
	// stacked roles must share one X; rowed roles must share one Y.
	stacked []Role
	rowed   []Role
	// sameWidth roles must share one width.
	sameWidth []Role
	// centered names the emphasized role recentred under the input column.
	centered Role
	roles    map[Role]roleRule
}

// sanityRules is the heuristics lookup table keyed by composite name.
var sanityRules = map[string]compositeRules{
	CompositeLoginForm: {
		axis:             AxisVertical,
		minContainerArea: 100000,
		stacked:          []Role{RoleLabel, RoleInput},
		sameWidth:        []Role{RoleInput},
		centered:         RoleButton,
		roles: map[Role]roleRule{
			RoleInput:  {kinds: []canvas.Kind{canvas.KindTextInput, canvas.KindRectangle}, minH: 30, maxH: 50, minW: 200},
			RoleTitle:  {kinds: []canvas.Kind{canvas.KindText}, minFont: 20, textRequired: true},
			RoleLabel:  {kinds: []canvas.Kind{canvas.KindText}, maxFont: 19, maxH: 30, textRequired: true},
			RoleButton: {kinds: []canvas.Kind{canvas.KindRectangle}, minH: 30, maxH: 60, maxW: 199},
		},
	},
	CompositeNavBar: {
		axis:             AxisHorizontal,
		minContainerArea: 40000,
		rowed:            []Role{RoleMenuItem},
		roles: map[Role]roleRule{
			RoleMenuItem: {kinds: []canvas.Kind{canvas.KindText}, textRequired: true},
		},
	},
	CompositeCard: {
		axis:             AxisVertical,
		minContainerArea: 80000,
		stacked:          []Role{RoleImage, RoleTitle, RoleBody},
		roles: map[Role]roleRule{
			RoleImage:  {kinds: []canvas.Kind{canvas.KindRectangle}, minH: 100, minW: 200},
			RoleTitle:  {kinds: []canvas.Kind{canvas.KindText}, minFont: 20, textRequired: true},
			RoleBody:   {kinds: []canvas.Kind{canvas.KindText}, maxFont: 19, textRequired: true},
			RoleButton: {kinds: []canvas.Kind{canvas.KindRectangle}, minH: 30, maxH: 60, maxW: 199},
		},
	},
}

// matches reports whether the object satisfies the rule's kind and extent
// constraints.
func (r roleRule) matches(o *canvas.Object) bool {
	kindOK := false
	for _, k := range r.kinds {
		if o.Kind == k {
			kindOK = true
			break
		}
	}
	if !kindOK {
		return false
	}
	if r.minW > 0 && o.Width < r.minW {
		return false
	}
	if r.maxW > 0 && o.Width > r.maxW {
		return false
	}
	if r.minH > 0 && o.Height < r.minH {
		return false
	}
	if r.maxH > 0 && o.Height > r.maxH {
		return false
	}
	if r.minFont > 0 && o.FontSize < r.minFont {
		return false
	}
	if r.maxFont > 0 && o.FontSize > r.maxFont {
		return false
	}
	if r.textRequired && o.Text == "" {
		return false
	}
	return true
}

// classifyRoles assigns a role to each non-container object that matches a
// rule, preserving snapshot order within each role. Objects matching no rule
// are ignored by the sanity pass.
func classifyRoles(rules compositeRules, objects []canvas.Object, containerID string) map[Role][]canvas.Object {
	ordered := roleOrder(rules)
	assigned := make(map[Role][]canvas.Object)

	for _, o := range objects {
		if o.ID.String() == containerID {
			continue
		}
		for _, role := range ordered {
			if rules.roles[role].matches(&o) {
				assigned[role] = append(assigned[role], o)
				break
			}
		}
	}
	return assigned
}

// roleOrder fixes the classification priority so an object matching several
// rules lands deterministically: inputs before buttons before text roles.
func roleOrder(rules compositeRules) []Role {
	priority := []Role{RoleInput, RoleImage, RoleButton, RoleTitle, RoleLabel, RoleBody, RoleMenuItem}
	var ordered []Role
	for _, role := range priority {
		if _, ok := rules.roles[role]; ok {
			ordered = append(ordered, role)
		}
	}
	return ordered
}
