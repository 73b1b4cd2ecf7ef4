package delaunay_test

import (
	"fmt"

	"github.com/chris-martin/delaunay"
	"github.com/chris-martin/delaunay/geom"
)

func ExampleNew() {
	mesh, err := delaunay.New([]geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(1, 1),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("triangles:", len(mesh.Triangles()))
	fmt.Println("edges:", len(mesh.Edges()))
	// Output:
	// triangles: 2
	// edges: 5
}
