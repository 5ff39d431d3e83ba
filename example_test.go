package minque_test

import (
	"fmt"
	"slices"

	"github.com/mizukyf/minque"
)

func Example() {
	records := []map[string]any{
		{"id": "map0", "key0": "foo", "key1": "bar"},
		{"id": "map1", "key0": "foo"},
		{"id": "map2", "key0": "hello", "key1": "world"},
	}

	q, err := minque.NewMapFactory().Compile("key0 == foo and (key1 ^= ba or key1 is null)")
	if err != nil {
		panic(err)
	}
	matches, err := q.SelectAll(slices.Values(records))
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		fmt.Println(m["id"])
	}
	// Output:
	// map0
	// map1
}

func ExampleQuery_Bind() {
	type person struct {
		Name string
		Age  int
	}
	people := []person{{"ann", 20}, {"bob", 40}, {"cy", 60}}

	f, err := minque.NewStructFactory[person]()
	if err != nil {
		panic(err)
	}
	q := f.MustCompile("age < ?")
	for _, limit := range []int{21, 41} {
		b, err := q.Bind(limit)
		if err != nil {
			panic(err)
		}
		n, _ := b.Count(slices.Values(people))
		fmt.Printf("age < %d: %d\n", limit, n)
	}
	// Output:
	// age < 21: 1
	// age < 41: 2
}

func ExampleIsCode() {
	_, err := minque.NewMapFactory().Compile("(key0 == foo")
	fmt.Println(minque.IsCode(err, minque.CodeSyntax))
	fmt.Println(err)
	// Output:
	// true
	// SYNTAX_ERROR at 1:13: expected ')' but found end of input
}
