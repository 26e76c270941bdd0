package main

import (
	"fmt"

	"github.com/mgnsk/ringlist"
)

func main() {
	var l ringlist.List[string]

	l.PushBack("beta")
	l.PushFront("alpha")
	l.PushBack("gamma")

	// Walk a cursor to the middle element and erase it.
	c := l.Begin()
	c.Next()
	if v, ok := l.Erase(c); ok {
		fmt.Println("erased:", v)
	}

	for v := range l.All() {
		fmt.Println(v)
	}

	// Move the contents into another list in constant time.
	var other ringlist.List[string]
	other.TakeFrom(&l)

	fmt.Println("source empty:", l.IsEmpty(), "destination len:", other.Len())
}
