package circle_test

import (
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/circle"
)

func ExampleCompute() {
	l := circle.Compute(circle.NewSections(3, 2), circle.UniformDiameter(20), circle.Params{
		Radius: 100,
	})
	for _, p := range l.Items {
		fmt.Printf("%s %.0f°\n", p.ID, p.Degrees())
	}
	// Output:
	// 0/0 0°
	// 0/1 72°
	// 0/2 144°
	// 1/0 216°
	// 1/1 288°
}

func ExampleCompute_clustering() {
	l := circle.Compute(circle.NewSections(2, 2), nil, circle.Params{Radius: 100, Clustering: 1})
	for _, p := range l.Items {
		fmt.Printf("%s %.0f°\n", p.ID, p.Degrees())
	}
	// Output:
	// 0/0 45°
	// 0/1 45°
	// 1/0 225°
	// 1/1 225°
}
