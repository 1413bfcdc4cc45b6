package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Vector is a small value type; assigning or passing one copies it.
type Vector struct {
	X, Y int
}

// Scaled returns a scaled copy. The receiver is a copy, so the caller's
// Vector is unchanged.
func (v Vector) Scaled(n int) Vector {
	v.X *= n
	v.Y *= n
	return v
}

// Scale scales the Vector in place through the pointer receiver.
func (v *Vector) Scale(n int) {
	v.X *= n
	v.Y *= n
}

// CopyingLesson demonstrates value-copy semantics with in-place mutation: a
// value-receiver method that leaves its receiver untouched next to a
// pointer-receiver method that mutates.
type CopyingLesson struct {
	v Vector
}

func NewCopyingLesson() *CopyingLesson {
	return &CopyingLesson{v: Vector{1, 2}}
}

func (l *CopyingLesson) Name() string { return "copying" }

// Vec returns a copy of the current Vector.
func (l *CopyingLesson) Vec() Vector { return l.v }

func (l *CopyingLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Copying"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf("v = %v", l.v)),
				Buttons: []tk.Button{
					{Label: ui.T("scale in place x2"),
						OnActivate: func() { l.v.Scale(2) }},
					{Label: ui.T("reset"),
						OnActivate: func() { l.v = Vector{1, 2} }},
				},
			},
			{Label: ui.T(fmt.Sprintf("v.Scaled(10) = %v, yet v is still %v",
				l.v.Scaled(10), l.v))},
		},
	}
}

func (l *CopyingLesson) Trace() []string {
	return []string{
		fmt.Sprintf("v = %v; Scaled copies, so v.Scaled(10) = %v leaves v at %v",
			l.v, l.v.Scaled(10), l.v),
		"Scale uses a pointer receiver and mutates v in place",
	}
}
