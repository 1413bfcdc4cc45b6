package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// SequencesLesson demonstrates homogeneous sequences: a growable slice of
// strings next to a fixed-length array of ints.
type SequencesLesson struct {
	words []string
	fib   [5]int
}

func NewSequencesLesson() *SequencesLesson {
	return &SequencesLesson{
		words: []string{"ant", "bee", "cat"},
		fib:   [5]int{1, 1, 2, 3, 5},
	}
}

func (l *SequencesLesson) Name() string { return "sequences" }

// Words returns the current slice.
func (l *SequencesLesson) Words() []string { return l.words }

// Fib returns the array. Note that this returns a copy.
func (l *SequencesLesson) Fib() [5]int { return l.fib }

// Append grows the slice by one word.
func (l *SequencesLesson) Append() {
	l.words = append(l.words, fmt.Sprintf("w%d", len(l.words)+1))
}

func (l *SequencesLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Sequences"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf(
					"words = %v (slice, len %d)", l.words, len(l.words))),
				Buttons: []tk.Button{
					{Label: ui.T("append"), OnActivate: l.Append},
				},
			},
			{Label: ui.T(fmt.Sprintf("fib = %v (array, fixed len %d)",
				l.fib, len(l.fib)))},
		},
	}
}

func (l *SequencesLesson) Trace() []string {
	return []string{
		fmt.Sprintf("words is a slice of string, len %d", len(l.words)),
		fmt.Sprintf("fib is an array of int, fixed len %d", len(l.fib)),
	}
}
