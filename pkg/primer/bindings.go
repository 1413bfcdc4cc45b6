package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Greeting is an immutable binding; it can never be reassigned.
const Greeting = "hello, primer"

// BindingsLesson demonstrates mutable and immutable bindings: a counter
// variable that buttons reassign, next to a constant.
type BindingsLesson struct {
	counter int
}

func NewBindingsLesson() *BindingsLesson { return &BindingsLesson{} }

func (l *BindingsLesson) Name() string { return "bindings" }

// Counter returns the current value of the mutable binding.
func (l *BindingsLesson) Counter() int { return l.counter }

func (l *BindingsLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Bindings"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf("var counter = %d", l.counter)),
				Buttons: []tk.Button{
					{Label: ui.T("+1"), OnActivate: func() { l.counter++ }},
					{Label: ui.T("-1"), OnActivate: func() { l.counter-- }},
				},
			},
			{Label: ui.T(fmt.Sprintf("const greeting = %q", Greeting))},
		},
	}
}

func (l *BindingsLesson) Trace() []string {
	return []string{
		fmt.Sprintf("counter is a variable, currently %d", l.counter),
		fmt.Sprintf("greeting is a constant, always %q", Greeting),
	}
}
