package deferred_test

import (
	"fmt"

	"github.com/amp-labs/deferred"
)

// ExampleOf demonstrates the normal populate-at-construction path.
func ExampleOf() {
	cell := deferred.Of(42)

	fmt.Println(cell.Populated())
	fmt.Println(cell.Get())
	// Output:
	// true
	// 42
}

// ExamplePlaceholder demonstrates deferred initialization: construct empty,
// fill in immediately afterwards, read later.
func ExamplePlaceholder() {
	cell := deferred.Placeholder[string]()
	cell.Set("ready")

	fmt.Println(cell.Take())
	// Output: ready
}

// ExampleValue_TryGet demonstrates probing before reading when emptiness is
// a recoverable condition for the caller.
func ExampleValue_TryGet() {
	var cell deferred.Value[int]

	if _, ok := cell.TryGet(); !ok {
		fmt.Println("not populated yet")
	}

	cell.Set(7)

	value, _ := cell.TryGet()
	fmt.Println(value)
	// Output:
	// not populated yet
	// 7
}

// ExampleValue_Mut demonstrates in-place mutation of the held value.
func ExampleValue_Mut() {
	cell := deferred.Of([]string{"a"})

	*cell.Mut() = append(*cell.Mut(), "b")

	fmt.Println(cell.Get())
	// Output: [a b]
}
