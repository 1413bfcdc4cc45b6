package primer

import (
	"fmt"

	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Celsius and Fahrenheit are distinct nominal types over float64. Values of
// one never convert to the other implicitly.
type (
	Celsius    float64
	Fahrenheit float64
)

// ToFahrenheit converts a temperature. The conversion preserves the value;
// only the type changes.
func ToFahrenheit(c Celsius) Fahrenheit {
	return Fahrenheit(c*9/5 + 32)
}

// Scores is a map type. Assigning a Scores value copies the reference, so
// two bindings observe the same underlying contents.
type Scores map[string]int

// TypesLesson demonstrates nominal types and value vs. reference semantics:
// a temperature converted between two distinct float64 types, and two map
// bindings sharing one underlying table.
type TypesLesson struct {
	temp Celsius
	a, b Scores
}

func NewTypesLesson() *TypesLesson {
	scores := Scores{"games": 0}
	return &TypesLesson{temp: 21, a: scores, b: scores}
}

func (l *TypesLesson) Name() string { return "types" }

// Bindings returns the two map bindings. They share the same table, so a
// write through one is visible through the other.
func (l *TypesLesson) Bindings() (a, b Scores) { return l.a, l.b }

func (l *TypesLesson) Section() tk.Section {
	return tk.Section{
		Title: ui.T("Types"),
		Rows: []tk.Row{
			{
				Label: ui.T(fmt.Sprintf("Celsius(%.0f) = Fahrenheit(%.1f)",
					float64(l.temp), float64(ToFahrenheit(l.temp)))),
				Buttons: []tk.Button{
					{Label: ui.T("warmer"), OnActivate: func() { l.temp++ }},
					{Label: ui.T("cooler"), OnActivate: func() { l.temp-- }},
				},
			},
			{
				Label: ui.T(fmt.Sprintf(
					`a["games"] = %d   b["games"] = %d (one shared map)`,
					l.a["games"], l.b["games"])),
				Buttons: []tk.Button{
					{Label: ui.T("bump via a"),
						OnActivate: func() { l.a["games"]++ }},
				},
			},
		},
	}
}

func (l *TypesLesson) Trace() []string {
	return []string{
		fmt.Sprintf("Celsius and Fahrenheit are distinct types; Celsius(%.0f) converts to Fahrenheit(%.1f)",
			float64(l.temp), float64(ToFahrenheit(l.temp))),
		fmt.Sprintf("a and b are bindings to one map; a[%q] = %d, b[%q] = %d",
			"games", l.a["games"], "games", l.b["games"]),
	}
}
