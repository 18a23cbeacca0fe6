package brandfolder_test

import (
	"testing"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func label(id, name string, position, depth int, path ...string) brandfolder.Resource {
	fullPath := make([]interface{}, 0, len(path)+1)
	for _, ancestor := range path {
		fullPath = append(fullPath, ancestor)
	}

	fullPath = append(fullPath, id)

	return brandfolder.Resource{
		ID:   id,
		Type: "labels",
		Attributes: map[string]interface{}{
			"name":     name,
			"position": float64(position),
			"depth":    float64(depth),
			"path":     fullPath,
		},
	}
}

func TestBuildLabelTree(t *testing.T) {
	t.Parallel()

	// Input order is deliberately scrambled
	labels := []brandfolder.Resource{
		label("grandchild", "Print", 0, 2, "campaigns", "q3"),
		label("assets", "Assets", 1, 0),
		label("q3", "Q3", 0, 1, "campaigns"),
		label("campaigns", "Campaigns", 0, 0),
		label("q4", "Q4", 1, 1, "campaigns"),
	}

	roots := brandfolder.BuildLabelTree(labels)

	require.Len(t, roots, 2)
	assert.Equal(t, "campaigns", roots[0].Label.ID)
	assert.Equal(t, "assets", roots[1].Label.ID)

	campaigns := roots[0]
	require.Len(t, campaigns.Children, 2)
	assert.Equal(t, "q3", campaigns.Children[0].Label.ID)
	assert.Equal(t, "q4", campaigns.Children[1].Label.ID)

	q3 := campaigns.Child("q3")
	require.NotNil(t, q3)
	require.Len(t, q3.Children, 1)
	assert.Equal(t, "grandchild", q3.Children[0].Label.ID)
}

func TestBuildLabelTree_SiblingOrder(t *testing.T) {
	t.Parallel()

	// Same position: the ID breaks the tie
	labels := []brandfolder.Resource{
		label("c", "Gamma", 1, 0),
		label("b", "Beta", 1, 0),
		label("a", "Alpha", 2, 0),
	}

	roots := brandfolder.BuildLabelTree(labels)

	require.Len(t, roots, 3)
	assert.Equal(t, "b", roots[0].Label.ID)
	assert.Equal(t, "c", roots[1].Label.ID)
	assert.Equal(t, "a", roots[2].Label.ID)
}

func TestBuildLabelTree_MissingAncestorReparents(t *testing.T) {
	t.Parallel()

	// "orphan" records an ancestor chain whose middle link never arrives;
	// it lands under the deepest ancestor that resolved.
	labels := []brandfolder.Resource{
		label("top", "Top", 0, 0),
		label("orphan", "Orphan", 0, 2, "top", "gone"),
	}

	roots := brandfolder.BuildLabelTree(labels)

	require.Len(t, roots, 1)
	top := roots[0]
	require.Len(t, top.Children, 1)
	assert.Equal(t, "orphan", top.Children[0].Label.ID)
}

func TestBuildLabelTree_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, brandfolder.BuildLabelTree(nil))
}

func TestLabelNames(t *testing.T) {
	t.Parallel()

	labels := []brandfolder.Resource{
		label("a", "Alpha", 0, 0),
		label("b", "Beta", 1, 0),
	}

	names := brandfolder.LabelNames(labels)

	assert.Equal(t, map[string]string{"a": "Alpha", "b": "Beta"}, names)
}
