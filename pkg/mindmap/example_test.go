package mindmap_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

func Example() {
	b := mindmap.NewBuilder(mindmap.ChildOrderDocument)
	root, _ := b.Root("root", "Ideas")
	b.Child(root, "", "First")
	b.Child(root, "b", "")

	t, _ := b.Build()
	t.Walk(func(id mindmap.NodeID, n *mindmap.Node) bool {
		fmt.Printf("%d %s %q parent=%d\n", id, n.ID, n.Text, n.Parent)
		return true
	})
	// Output:
	// 0 root "Ideas" parent=-1
	// 1 auto_1 "First" parent=0
	// 2 b "b" parent=0
}

func ExampleReadFreeMind() {
	doc := `<map><node ID="r" TEXT="Trip"><node TEXT="Flights"/><node TEXT="Hotel"/></node></map>`

	t, err := mindmap.ReadFreeMind(strings.NewReader(doc), mindmap.ChildOrderReversed)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range t.Children(t.Root()) {
		fmt.Println(t.Node(c).ID, t.Node(c).Text)
	}
	// Output:
	// auto_2 Hotel
	// auto_1 Flights
}
