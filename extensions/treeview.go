package extensions

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"

	ranno "github.com/ranno-fn/ranno-go"
)

// TreeNode describes one node of an annotated structure for rendering.
// Anno is the rendered annotation; it is only shown when Cached is set.
type TreeNode struct {
	Label    string
	Cached   bool
	Anno     string
	Children []TreeNode
}

// Node builds a renderable node from a container without forcing a
// derivation: the annotation appears only if it is already cached.
func Node[C, A any](label string, a *ranno.Annotated[C, A], children ...TreeNode) TreeNode {
	n := TreeNode{
		Label:    label,
		Children: children,
	}

	if v, ok := a.Peek(); ok {
		n.Cached = true
		n.Anno = fmt.Sprint(v)
	}

	return n
}

// DrawTree renders an annotated structure with treedrawer. Cached
// annotations show next to their label; empty cache slots show as "_".
func DrawTree(root TreeNode) string {
	t := tree.NewTree(tree.NodeString(nodeLabel(root)))
	addChildren(t, root.Children)
	return fmt.Sprint(t)
}

func addChildren(t *tree.Tree, children []TreeNode) {
	for i, child := range children {
		t.AddChild(tree.NodeString(nodeLabel(child)))

		sub, err := t.Child(i)
		if err != nil {
			continue
		}
		addChildren(sub, child.Children)
	}
}

func nodeLabel(n TreeNode) string {
	if !n.Cached {
		return n.Label + " _"
	}
	return n.Label + " " + n.Anno
}
