package stack

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func pushAll[T any](s *Stack[T], items ...T) {
	for _, item := range items {
		So(s.Push(item), ShouldBeNil)
	}
}

func TestNew(t *testing.T) {
	Convey("Given a new stack", t, func() {
		s := New[string]()

		So(s, ShouldNotBeNil)
		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Size(), ShouldEqual, 0)
		So(s.Peek().IsAbsent(), ShouldBeTrue)
	})

	Convey("The zero value is an empty stack", t, func() {
		var s Stack[int]

		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Push(1), ShouldBeNil)
		So(s.Peek().MustGet(), ShouldEqual, 1)
	})
}

func TestPush(t *testing.T) {
	Convey("Push", t, func() {
		s := New[string]()

		Convey("Should make the stack non-empty", func() {
			pushAll(s, "8-D")
			So(s.IsEmpty(), ShouldBeFalse)
			So(s.Size(), ShouldEqual, 1)
		})

		Convey("Should grow the size by one each time", func() {
			for i, item := range []string{"a", "b", "c", "d"} {
				pushAll(s, item)
				So(s.Size(), ShouldEqual, i+1)
				So(s.Peek().MustGet(), ShouldEqual, item)
			}
		})
	})

	Convey("Push of a nil element", t, func() {
		s := New[*string]()
		err := s.Push(nil)

		So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		So(s.IsEmpty(), ShouldBeTrue)
	})

	Convey("Push of nil slices and interfaces", t, func() {
		So(errors.Is(New[any]().Push(nil), ErrInvalidArgument), ShouldBeTrue)

		var bs Stack[[]byte]
		So(errors.Is(bs.Push(nil), ErrInvalidArgument), ShouldBeTrue)
		So(bs.Push([]byte{}), ShouldBeNil)
	})
}

func TestPeek(t *testing.T) {
	Convey("Peek", t, func() {
		s := New[string]()

		Convey("Should return the last pushed item", func() {
			pushAll(s, "Something")
			So(s.Peek().MustGet(), ShouldEqual, "Something")
		})

		Convey("Should return the 3rd pushed item", func() {
			pushAll(s, "Hello", "World", "!")
			So(s.Peek().MustGet(), ShouldEqual, "!")
		})

		Convey("Should not change the size", func() {
			pushAll(s, "Hello", "World")
			_ = s.Peek()
			So(s.Size(), ShouldEqual, 2)
		})

		Convey("Should return none on an empty stack", func() {
			item, ok := s.Peek().Get()
			So(ok, ShouldBeFalse)
			So(item, ShouldBeEmpty)
		})
	})
}

func TestPop(t *testing.T) {
	Convey("Pop", t, func() {
		s := New[string]()

		Convey("Should return the last pushed item and empty the stack", func() {
			pushAll(s, "Something")
			item, err := s.Pop()
			So(err, ShouldBeNil)
			So(item, ShouldEqual, "Something")
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("Should return pushed items in reverse order", func() {
			pushAll(s, "Hello", "World", "!")
			for _, want := range []string{"!", "World", "Hello"} {
				size := s.Size()
				item, err := s.Pop()
				So(err, ShouldBeNil)
				So(item, ShouldEqual, want)
				So(s.Size(), ShouldEqual, size-1)
			}
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Should restore the previous emptiness", func() {
			pushAll(s, "Hello")
			pushAll(s, "World")
			_, err := s.Pop()
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldBeFalse)
			So(s.Peek().MustGet(), ShouldEqual, "Hello")
		})

		Convey("Should fail on an empty stack", func() {
			item, err := s.Pop()
			So(errors.Is(err, ErrEmptyContainer), ShouldBeTrue)
			So(item, ShouldBeEmpty)
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("Should fail once everything was popped", func() {
			pushAll(s, "Hello")
			_, _ = s.Pop()
			_, err := s.Pop()
			So(errors.Is(err, ErrEmptyContainer), ShouldBeTrue)
		})
	})
}

func TestContains(t *testing.T) {
	Convey("Contains", t, func() {
		s := New[string]()
		pushAll(s, "Hello", "World", "!")

		Convey("Should return true when the item is found", func() {
			found, err := s.Contains("World")
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
		})

		Convey("Should return false when the item is not found", func() {
			found, err := s.Contains("Something")
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
		})

		// The bottom element is compared too.
		Convey("Should find the earliest pushed item", func() {
			found, err := s.Contains("Hello")
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
		})

		Convey("Should find the only item of a single element stack", func() {
			single := New[string]()
			pushAll(single, "alone")
			found, err := single.Contains("alone")
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
		})

		Convey("Should return false on an empty stack", func() {
			found, err := New[string]().Contains("Hello")
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
		})

		Convey("Should not find popped items", func() {
			_, _ = s.Pop()
			found, err := s.Contains("!")
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
		})

		Convey("Should not change the size", func() {
			_, _ = s.Contains("World")
			So(s.Size(), ShouldEqual, 3)
		})
	})

	Convey("Contains with a nil target", t, func() {
		s := New[*string]()
		found, err := s.Contains(nil)

		So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		So(found, ShouldBeFalse)
	})

	Convey("Contains on an interface-typed stack holding uncomparable values", t, func() {
		s := New[any]()
		pushAll(s, any([]int{1}), any(map[string]int{"a": 1}), any("Hello"))

		So(func() { _, _ = s.Contains([]int{1}) }, ShouldNotPanic)

		found, err := s.Contains([]int{1})
		So(err, ShouldBeNil)
		So(found, ShouldBeTrue)

		found, err = s.Contains(map[string]int{"a": 2})
		So(err, ShouldBeNil)
		So(found, ShouldBeFalse)

		found, err = s.Contains("Hello")
		So(err, ShouldBeNil)
		So(found, ShouldBeTrue)
	})

	Convey("Contains with a custom equality", t, func() {
		s := NewFunc(strings.EqualFold)
		pushAll(s, "Hello", "World")

		found, err := s.Contains("hello")
		So(err, ShouldBeNil)
		So(found, ShouldBeTrue)
	})

	Convey("Contains on the zero value compares deeply", t, func() {
		var z Stack[[]int]
		pushAll(&z, []int{1, 2}, []int{3})

		found, err := z.Contains([]int{1, 2})
		So(err, ShouldBeNil)
		So(found, ShouldBeTrue)

		found, err = z.Contains([]int{2, 1})
		So(err, ShouldBeNil)
		So(found, ShouldBeFalse)
	})
}

func TestPeekN(t *testing.T) {
	Convey("PeekN", t, func() {
		s := New[string]()

		Convey("Should fail when the index is negative", func() {
			_, err := s.PeekN(-1)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Should fail on an empty stack at index 0", func() {
			item, err := s.PeekN(0)
			So(errors.Is(err, ErrEmptyContainer), ShouldBeTrue)
			So(item, ShouldBeEmpty)
		})

		Convey("With three items", func() {
			pushAll(s, "Hello", "World", "!")

			Convey("Should return the nth item counted from the bottom", func() {
				So(must(s.PeekN(1)), ShouldEqual, "Hello")
				So(must(s.PeekN(2)), ShouldEqual, "World")
				So(must(s.PeekN(3)), ShouldEqual, "!")
			})

			Convey("Should match Peek at the size", func() {
				So(must(s.PeekN(s.Size())), ShouldEqual, s.Peek().MustGet())
			})

			Convey("Should fail when the index is greater than the size", func() {
				_, err := s.PeekN(s.Size() + 1)
				So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			})

			Convey("Should fail at index 0", func() {
				_, err := s.PeekN(0)
				So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			})

			Convey("Should not change the size", func() {
				_, _ = s.PeekN(2)
				_, _ = s.PeekN(7)
				So(s.Size(), ShouldEqual, 3)
			})
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Clear", t, func() {
		s := New[int]()
		pushAll(s, 1, 2, 3)
		s.Clear()

		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Size(), ShouldEqual, 0)
		So(s.Peek().IsAbsent(), ShouldBeTrue)

		found, err := s.Contains(1)
		So(err, ShouldBeNil)
		So(found, ShouldBeFalse)

		pushAll(s, 4)
		So(s.Peek().MustGet(), ShouldEqual, 4)
	})
}

func TestSizeInvariant(t *testing.T) {
	Convey("IsEmpty is true exactly when Size is 0", t, func() {
		s := New[int]()
		for i := 0; i < 5; i++ {
			So(s.IsEmpty(), ShouldEqual, s.Size() == 0)
			pushAll(s, i)
		}
		for !s.IsEmpty() {
			_, err := s.Pop()
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldEqual, s.Size() == 0)
		}
	})
}

// must drops the error of a successful lookup.
func must[T any](item T, err error) T {
	So(err, ShouldBeNil)
	return item
}
