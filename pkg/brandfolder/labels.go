package brandfolder

import (
	"sort"
)

// LabelNode is one node of the materialized label tree. Children keep the
// deterministic (position, id) sibling order of the build.
type LabelNode struct {
	Label    Resource     `json:"label"`
	Children []*LabelNode `json:"children,omitempty"`

	byID map[string]*LabelNode
}

func newLabelNode(label Resource) *LabelNode {
	return &LabelNode{Label: label}
}

// Child returns the direct child with the given label ID, or nil.
func (n *LabelNode) Child(id string) *LabelNode {
	return n.byID[id]
}

func (n *LabelNode) addChild(id string, child *LabelNode) {
	if n.byID == nil {
		n.byID = make(map[string]*LabelNode)
	}

	n.byID[id] = child
	n.Children = append(n.Children, child)
}

// BuildLabelTree reconstructs the label hierarchy from a fully aggregated
// flat label list. Each label carries position, depth, and path (its
// ancestor IDs ending in its own ID) attributes.
//
// Labels are placed tier by tier from depth 0 upward, guaranteeing every
// ancestor exists before its descendants; within a tier siblings are
// ordered by (position, id). A label whose recorded lineage cannot be
// fully walked is attached under the deepest ancestor still resolvable
// rather than dropped.
func BuildLabelTree(labels []Resource) []*LabelNode {
	tiers := make(map[int][]Resource)

	for _, label := range labels {
		depth, _ := label.Int("depth")
		tiers[depth] = append(tiers[depth], label)
	}

	depths := make([]int, 0, len(tiers))
	for depth := range tiers {
		depths = append(depths, depth)
	}

	sort.Ints(depths)

	root := &LabelNode{}

	for _, depth := range depths {
		tier := tiers[depth]

		sort.Slice(tier, func(i, j int) bool {
			left, _ := tier[i].Int("position")
			right, _ := tier[j].Int("position")

			if left != right {
				return left < right
			}

			return tier[i].ID < tier[j].ID
		})

		for _, label := range tier {
			placeLabel(root, label)
		}
	}

	return root.Children
}

func placeLabel(root *LabelNode, label Resource) {
	parent := root

	for _, ancestorID := range lineage(label) {
		next := parent.Child(ancestorID)
		if next == nil {
			// Missing intermediate ancestor: attach at the deepest
			// ancestor we could still resolve.
			break
		}

		parent = next
	}

	parent.addChild(label.ID, newLabelNode(label))
}

// lineage returns the label's ancestor IDs, i.e. its path attribute minus
// the trailing own ID.
func lineage(label Resource) []string {
	raw, ok := label.Attributes["path"].([]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}

	ids := make([]string, 0, len(raw)-1)

	for _, element := range raw[:len(raw)-1] {
		id, ok := element.(string)
		if !ok {
			continue
		}

		ids = append(ids, id)
	}

	return ids
}

// LabelNames is the simple-format view: a flat label ID to name mapping
// with no hierarchy.
func LabelNames(labels []Resource) map[string]string {
	names := make(map[string]string, len(labels))

	for _, label := range labels {
		names[label.ID] = label.Name()
	}

	return names
}
