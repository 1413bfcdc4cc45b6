package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Double returns twice x.
func Double(x int) int { return 2 * x }

// Add returns the sum of a and b.
func Add(a, b int) int { return a + b }

// FunctionsLesson demonstrates pure functions: the results row is recomputed
// from the operand on every render, never stored.
type FunctionsLesson struct {
	x int
}

func NewFunctionsLesson() *FunctionsLesson { return &FunctionsLesson{x: 3} }

func (l *FunctionsLesson) Name() string { return "functions" }

func (l *FunctionsLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Functions"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf("x = %d", l.x)),
				Buttons: []tk.Button{
					{Label: ui.T("+1"), OnActivate: func() { l.x++ }},
					{Label: ui.T("-1"), OnActivate: func() { l.x-- }},
				},
			},
			{Label: ui.T(fmt.Sprintf("Double(x) = %d   Add(x, 10) = %d",
				Double(l.x), Add(l.x, 10)))},
		},
	}
}

func (l *FunctionsLesson) Trace() []string {
	return []string{
		fmt.Sprintf("Double(%d) = %d", l.x, Double(l.x)),
		fmt.Sprintf("Add(%d, 10) = %d", l.x, Add(l.x, 10)),
	}
}
