package reconcile

// Group is one partition of a vendor's raw items, keyed by the raw
// (manufacturer, model, grade) strings before any catalog resolution.
type Group struct {
	Manufacturer string
	Model        string
	Grade        string
	Items        []RawItem
}

// Key returns the group key built from raw strings. Items with no
// recognizable manufacturer/model still form a group under empty-string
// components; such groups fail resolution downstream and are counted as
// skipped rather than crashing the run.
func (g *Group) Key() string {
	return g.Manufacturer + "_" + g.Model + "_" + g.Grade
}

// GroupItems partitions raw items by (manufacturer, model, grade).
// The returned keys slice preserves first-seen order so processing and
// reporting stay deterministic.
func GroupItems(items []RawItem) (map[string]*Group, []string) {
	groups := make(map[string]*Group)
	keys := make([]string, 0)

	for _, item := range items {
		group := &Group{
			Manufacturer: item.Manufacturer,
			Model:        item.Model,
			Grade:        item.Grade,
		}
		key := group.Key()

		existing, ok := groups[key]
		if !ok {
			groups[key] = group
			keys = append(keys, key)
			existing = group
		}
		existing.Items = append(existing.Items, item)
	}

	return groups, keys
}
