package nonempty_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-nonempty/nonempty"
)

func ExampleNew() {
	s := nonempty.New(1, 2, 3, 4, 5)
	fmt.Println(s.Len(), s.First(), s.Last())
	// Output: 5 1 5
}

func ExampleFrom() {
	s, err := nonempty.From([]int{1, 2, 3, 4})
	fmt.Println(s.First(), s.Rest(), err)

	_, err = nonempty.From([]int{})
	fmt.Println(err)
	// Output:
	// 1 [2 3 4] <nil>
	// nonempty: cannot build a sequence from an empty slice
}

func ExampleSeq_Reduce() {
	max := nonempty.New(3, 9, 4, 1).Reduce(func(acc, n int) int {
		if n > acc {
			return n
		}
		return acc
	})
	fmt.Println(max)
	// Output: 9
}

func ExampleSeq_Intersperse() {
	s := nonempty.New(1, 2, 3, 4).Intersperse(0)
	fmt.Println(s)
	// Output: [1,0,2,0,3,0,4]
}

func ExampleSeq_Sort() {
	s := nonempty.New(5, 3, 1, 4, 2).Sort(func(a, b int) int { return a - b })
	fmt.Println(s)
	// Output: [1,2,3,4,5]
}

func ExampleMap() {
	labels := nonempty.Map(nonempty.New(1, 2, 3), func(n int) string {
		return strconv.Itoa(n * n)
	})
	fmt.Println(labels.Implode(", ", func(s string) string { return s }))
	// Output: 1, 4, 9
}

func ExampleScan() {
	running := nonempty.Scan(nonempty.New(1, 2, 3, 4), 0, func(acc, n int) int {
		return acc + n
	})
	fmt.Println(running)
	// Output: [1,3,6,10]
}

func ExampleFlatten() {
	nested := nonempty.New(
		nonempty.New(1, 2, 3),
		nonempty.New(3, 4, 5),
	)
	fmt.Println(nonempty.Flatten(nested))
	// Output: [1,2,3,3,4,5]
}

func ExampleZip() {
	pairs := nonempty.Zip(
		nonempty.New("a", "b", "c"),
		nonempty.New(1, 2), // the longer side is truncated
	)
	pairs.Each(func(p nonempty.Pair[string, int], _ int) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	})
	// Output:
	// a=1
	// b=2
}

func ExampleStrictZip() {
	_, err := nonempty.StrictZip(
		nonempty.New(1, 2),
		nonempty.New("a"),
	)
	fmt.Println(err)
	// Output: nonempty: sequences must have the same length
}

func ExampleGroupBy() {
	groups := nonempty.GroupBy(nonempty.New(1, 2, 3, 4, 5, 6), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	// bucket elements are in reverse order of appearance
	fmt.Println(groups["even"], groups["odd"])
	// Output: [6,4,2] [5,3,1]
}
