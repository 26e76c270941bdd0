package ringlist_test

import (
	"slices"

	"github.com/mgnsk/ringlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("pushing in order", func() {
	var l *ringlist.List[int]

	BeforeEach(func() {
		l = ringlist.New[int]()
	})

	When("values 1..n are pushed to the back", func() {
		Specify("forward iteration yields them in push order", func() {
			for i := 1; i <= 5; i++ {
				l.PushBack(i)
			}

			Expect(slices.Collect(l.All())).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(l.Len()).To(Equal(5))
		})
	})

	When("values 1..n are pushed to the front", func() {
		Specify("forward iteration yields them reversed", func() {
			for i := 1; i <= 5; i++ {
				l.PushFront(i)
			}

			Expect(slices.Collect(l.All())).To(Equal([]int{5, 4, 3, 2, 1}))
			Expect(l.Len()).To(Equal(5))
		})
	})
})

var _ = Describe("pushing and popping at both ends", func() {
	Specify("front and back track the remaining elements", func() {
		var l ringlist.List[int]

		l.PushBack(10)
		l.PushBack(20)

		Expect(l.Front().Value).To(Equal(10))
		Expect(l.Back().Value).To(Equal(20))
		Expect(l.Len()).To(Equal(2))

		v, ok := l.PopFront()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(10))
		Expect(l.Front().Value).To(Equal(20))
		Expect(l.Back().Value).To(Equal(20))
		Expect(l.Len()).To(Equal(1))

		v, ok = l.PopBack()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(20))
		Expect(l.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("erasing through a cursor", func() {
	var l *ringlist.List[string]

	BeforeEach(func() {
		l = ringlist.New[string]()
		l.PushBack("a")
		l.PushBack("b")
		l.PushBack("c")
	})

	When("a middle element is erased", func() {
		Specify("exactly that element is removed", func() {
			ca := l.Begin()
			cb := ca
			cb.Next()
			cc := cb
			cc.Next()

			v, ok := l.Erase(cb)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("b"))

			Expect(slices.Collect(l.All())).To(Equal([]string{"a", "c"}))
			Expect(l.Len()).To(Equal(2))

			By("other cursors remaining valid")
			Expect(ca.Value()).To(Equal("a"))
			Expect(cc.Value()).To(Equal("c"))
		})
	})

	When("the end marker is erased", func() {
		Specify("the list is unchanged", func() {
			_, ok := l.Erase(l.End())
			Expect(ok).To(BeFalse())

			Expect(slices.Collect(l.All())).To(Equal([]string{"a", "b", "c"}))
			Expect(l.Len()).To(Equal(3))
		})
	})
})

var _ = Describe("copying a list", func() {
	Specify("the copy is element-wise equal and fully independent", func() {
		src := ringlist.New[int]()
		src.PushBack(1)
		src.PushBack(2)
		src.PushBack(3)

		dst := src.Clone()
		Expect(slices.Collect(dst.All())).To(Equal(slices.Collect(src.All())))

		dst.PushBack(4)
		dst.PopFront()
		Expect(slices.Collect(src.All())).To(Equal([]int{1, 2, 3}))

		src.PushFront(0)
		Expect(slices.Collect(dst.All())).To(Equal([]int{2, 3, 4}))
	})
})

var _ = Describe("moving a list", func() {
	Specify("the destination takes over the sequence and the source is emptied", func() {
		src := ringlist.New[int]()
		src.PushBack(1)
		src.PushBack(2)

		dst := ringlist.New[int]()
		dst.TakeFrom(src)

		Expect(slices.Collect(dst.All())).To(Equal([]int{1, 2}))
		Expect(src.IsEmpty()).To(BeTrue())
		Expect(src.Begin() == src.End()).To(BeTrue())
	})
})

var _ = Describe("size bookkeeping", func() {
	Specify("Len always equals the cursor distance from Begin to End", func() {
		var l ringlist.List[int]

		ops := []func(){
			func() { l.PushBack(1) },
			func() { l.PushFront(2) },
			func() { l.PushBack(3) },
			func() { l.PopBack() },
			func() { l.PushFront(4) },
			func() { l.PopFront() },
			func() { l.Erase(l.Begin()) },
			func() { l.Insert(5, l.End()) },
			func() { l.PopFront() },
			func() { l.PopBack() },
		}

		for _, op := range ops {
			op()

			steps := 0
			for c := l.Begin(); c != l.End(); c.Next() {
				steps++
			}
			Expect(steps).To(Equal(l.Len()))
		}
	})
})
