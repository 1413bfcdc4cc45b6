package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Number is the constraint for the generic helpers.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum returns the sum of xs.
func Sum[N Number](xs []N) N {
	var sum N
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Smallest returns the smallest element of xs, or the zero value if xs is
// empty.
func Smallest[N Number](xs []N) N {
	if len(xs) == 0 {
		var zero N
		return zero
	}
	smallest := xs[0]
	for _, x := range xs[1:] {
		if x < smallest {
			smallest = x
		}
	}
	return smallest
}

// GenericsLesson demonstrates constrained generic functions by applying the
// same Sum and Smallest to an int and a float64 sequence.
type GenericsLesson struct {
	ints   []int
	floats []float64
}

func NewGenericsLesson() *GenericsLesson {
	return &GenericsLesson{
		ints:   []int{3, 1, 4},
		floats: []float64{2.5, 1.5},
	}
}

func (l *GenericsLesson) Name() string { return "generics" }

func (l *GenericsLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Generics"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf(
					"ints = %v: Sum = %d, Smallest = %d",
					l.ints, Sum(l.ints), Smallest(l.ints))),
				Buttons: []tk.Button{
					{Label: ui.T("append"), OnActivate: func() {
						l.ints = append(l.ints, len(l.ints)+1)
					}},
				},
			},
			{Label: ui.T(fmt.Sprintf(
				"floats = %v: Sum = %.1f, Smallest = %.1f",
				l.floats, Sum(l.floats), Smallest(l.floats)))},
		},
	}
}

func (l *GenericsLesson) Trace() []string {
	return []string{
		fmt.Sprintf("Sum(%v) = %d over int", l.ints, Sum(l.ints)),
		fmt.Sprintf("Smallest(%v) = %.1f over float64", l.floats, Smallest(l.floats)),
	}
}
