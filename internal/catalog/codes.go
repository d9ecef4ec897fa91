// Package catalog holds the pure business rules of the marketplace catalog:
// the category code tables and the filter/sort/paginate engine.
package catalog

// FacetEntry pairs a persisted category code with its display label.
type FacetEntry struct {
	Code  int
	Label string
}

// FacetTable is one of the three fixed classification dimensions. Order is
// significant: Labels returns matches in table order.
type FacetTable []FacetEntry

var (
	Audience = FacetTable{
		{1, "Women's"},
		{2, "Men's"},
		{3, "Kids"},
	}
	Types = FacetTable{
		{4, "Tops"},
		{5, "Bottoms"},
		{6, "Outerwear"},
		{7, "Dresses"},
		{8, "Shoes"},
		{9, "Accessories"},
	}
	Colors = FacetTable{
		{10, "Black"},
		{11, "White"},
		{12, "Red"},
		{13, "Blue"},
		{14, "Green"},
		{15, "Pink"},
	}
)

// Labels returns, in table order, the label of every entry whose code appears
// in codes. Unknown codes are silently omitted so display never fails as the
// category table evolves.
func (t FacetTable) Labels(codes []int) []string {
	present := make(map[int]bool, len(codes))
	for _, c := range codes {
		present[c] = true
	}
	var out []string
	for _, e := range t {
		if present[e.Code] {
			out = append(out, e.Label)
		}
	}
	return out
}

// Code is the inverse of Labels for a single label.
func (t FacetTable) Code(label string) (int, bool) {
	for _, e := range t {
		if e.Label == label {
			return e.Code, true
		}
	}
	return 0, false
}

// KnownCode reports whether code resolves to a facet in any table.
func KnownCode(code int) bool {
	for _, t := range []FacetTable{Audience, Types, Colors} {
		for _, e := range t {
			if e.Code == code {
				return true
			}
		}
	}
	return false
}

var conditions = []struct {
	Tag   string
	Label string
}{
	{"new", "Brand New"},
	{"excellent", "Used – Like New"},
	{"good", "Used – Good"},
	{"worn", "Used – Fair"},
}

// ConditionLabel maps a stored condition tag to its display label, or "" when
// the tag is unknown.
func ConditionLabel(tag string) string {
	for _, c := range conditions {
		if c.Tag == tag {
			return c.Label
		}
	}
	return ""
}

// ConditionTag maps a display label back to its stored tag.
func ConditionTag(label string) (string, bool) {
	for _, c := range conditions {
		if c.Label == label {
			return c.Tag, true
		}
	}
	return "", false
}

// ConditionLabels lists the four display labels in fixed order.
func ConditionLabels() []string {
	out := make([]string, len(conditions))
	for i, c := range conditions {
		out[i] = c.Label
	}
	return out
}
