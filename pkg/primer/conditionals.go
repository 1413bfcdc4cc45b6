package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Relation returns the ordering relation between a and b, one of "<", ">"
// and "==".
func Relation(a, b float64) string {
	switch {
	case a < b:
		return "<"
	case a > b:
		return ">"
	default:
		return "=="
	}
}

// ConditionalsLesson demonstrates conditional branching: a pair of floats
// and an ordering relation re-derived from them on every render.
type ConditionalsLesson struct {
	left, right float64
}

func NewConditionalsLesson() *ConditionalsLesson {
	return &ConditionalsLesson{left: 1.5, right: 2.5}
}

func (l *ConditionalsLesson) Name() string { return "conditionals" }

// Pair returns the current operands.
func (l *ConditionalsLesson) Pair() (left, right float64) {
	return l.left, l.right
}

func (l *ConditionalsLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Conditionals"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf(
					"left = %.1f   right = %.1f", l.left, l.right)),
				Buttons: []tk.Button{
					{Label: ui.T("left +1"), OnActivate: func() { l.left++ }},
					{Label: ui.T("left -1"), OnActivate: func() { l.left-- }},
				},
			},
			{Label: ui.T(fmt.Sprintf(
				"so left %s right", Relation(l.left, l.right)))},
		},
	}
}

func (l *ConditionalsLesson) Trace() []string {
	return []string{fmt.Sprintf("left = %.1f, right = %.1f, so left %s right",
		l.left, l.right, Relation(l.left, l.right))}
}
