// Package primer implements the tutorial lessons and the screen that
// presents them.
//
// Each lesson owns a small piece of mutable state and derives a titled
// section of the screen from it on demand. Buttons mutate the state; the
// next render re-derives the section, so the screen always reflects the
// current state without any patching.
package primer

import "github.com/goprimer/goprimer/pkg/tk"

// Lesson is one tutorial unit.
type Lesson interface {
	// Name returns a short identifier, used to prefix trace lines.
	Name() string
	// Section derives the lesson's screen section from its current state. It
	// is called on every render and must be free of side effects.
	Section() tk.Section
	// Trace returns diagnostic lines describing the lesson's current state.
	Trace() []string
}

// Lessons returns fresh instances of all lessons, in presentation order.
func Lessons() []Lesson {
	return []Lesson{
		NewBindingsLesson(),
		NewSequencesLesson(),
		NewConditionalsLesson(),
		NewFunctionsLesson(),
		NewTypesLesson(),
		NewCopyingLesson(),
		NewGenericsLesson(),
	}
}
