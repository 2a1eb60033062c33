package typevec_test

import (
	"fmt"

	"github.com/hupe1980/typevec"
)

// Example walks through the statically checked codepaths.
func Example() {
	v := typevec.New[int]()
	v3 := typevec.Push(typevec.Push(typevec.Push(v, 3), 1), 4)
	fmt.Println(v3, v3.Len(), v3.Size())

	v4 := typevec.Insert0(v3, 7)
	fmt.Println(typevec.Get0(v4), typevec.Get3(v4))

	v3, last := typevec.Pop(v4)
	fmt.Println(v3, last)
	// Output:
	// [3 1 4] 3 Exact(3)
	// 7 4
	// [7 3 1] 4
}

// ExamplePopDyn shows the absence indicator of the dynamic codepath.
func ExamplePopDyn() {
	d := typevec.FromSlice([]string{"a", "b"})

	d, s, ok := typevec.PopDyn(d)
	fmt.Println(s, ok)
	d, s, ok = typevec.PopDyn(d)
	fmt.Println(s, ok)
	_, _, ok = typevec.PopDyn(d)
	fmt.Println(ok)
	// Output:
	// b true
	// a true
	// false
}

// ExampleIntoExact converts a runtime length into a static one.
func ExampleIntoExact() {
	d := typevec.FromSlice([]int{1, 2, 3})

	if _, ok := typevec.IntoExact[typevec.U2](d); !ok {
		fmt.Println("not of length 2")
	}

	s, ok := typevec.IntoExact[typevec.U3](d)
	fmt.Println(ok, typevec.Get2(s), s.Size())
	// Output:
	// not of length 2
	// true 3 Exact(3)
}

// ExampleVect_Get reads with an index only known at runtime.
func ExampleVect_Get() {
	v := typevec.Push(typevec.Push(typevec.New[string](), "x"), "y")

	for _, i := range []int{1, 2} {
		s, ok := v.Get(i)
		fmt.Printf("%d: %q %v\n", i, s, ok)
	}
	// Output:
	// 1: "y" true
	// 2: "" false
}
