package app

import "sync"

// Capacity of the input channel. Large enough that a burst of escape
// sequences from a paste does not block the reader goroutine.
const inputChSize = 128

// The main loop skeleton: it owns the input and redraw channels and defers
// all actual work to two callbacks.
type loop struct {
	inputCh  chan event
	handleCb handleCb
	redrawCb redrawCb

	redrawCh    chan struct{}
	redrawFull  bool
	redrawMutex sync.Mutex

	returnCh chan error
}

// Inputs are opaque to the loop; the handle callback knows what they are.
type event any

// Callback for handling one input event.
type handleCb func(event)

// Callback for redrawing the UI.
type redrawCb func(flag redrawFlag)

type redrawFlag uint

const (
	// fullRedraw is set when Redraw was called with full = true since the
	// previous redraw.
	fullRedraw redrawFlag = 1 << iota
	// finalRedraw marks the redraw performed just before Run returns.
	finalRedraw
)

func newLoop() *loop {
	return &loop{
		inputCh:  make(chan event, inputChSize),
		handleCb: func(event) {},
		redrawCb: func(redrawFlag) {},

		redrawCh: make(chan struct{}, 1),
		returnCh: make(chan error, 1),
	}
}

// HandleCb sets the handle callback. Must be called before Run.
func (lp *loop) HandleCb(cb handleCb) {
	lp.handleCb = cb
}

// RedrawCb sets the redraw callback. Must be called before Run.
func (lp *loop) RedrawCb(cb redrawCb) {
	lp.redrawCb = cb
}

// Redraw requests a redraw, optionally a full one. It never blocks; requests
// arriving between two redraws collapse into one.
func (lp *loop) Redraw(full bool) {
	lp.redrawMutex.Lock()
	defer lp.redrawMutex.Unlock()
	if full {
		lp.redrawFull = true
	}
	select {
	case lp.redrawCh <- struct{}{}:
	default:
	}
}

// Input feeds one event into the loop. It blocks if the input buffer is
// full.
func (lp *loop) Input(ev event) {
	lp.inputCh <- ev
}

// Return asks Run to return with the given error. It never blocks, and only
// the first call per loop run takes effect.
func (lp *loop) Return(err error) {
	select {
	case lp.returnCh <- err:
	default:
	}
}

// Run drives the loop until Return is called. Each iteration redraws first
// and then waits for input; queued events are drained in one batch so a
// burst of keys costs a single redraw. Everything runs on the calling
// goroutine, so the callbacks never race with each other.
func (lp *loop) Run() error {
	for {
		var flag redrawFlag
		if lp.takeRedrawFull() {
			flag |= fullRedraw
		}
		lp.redrawCb(flag)
		select {
		case ev := <-lp.inputCh:
		batch:
			for {
				lp.handleCb(ev)
				select {
				case err := <-lp.returnCh:
					lp.redrawCb(finalRedraw)
					return err
				default:
				}
				// Drain whatever queued up while handling.
				select {
				case ev = <-lp.inputCh:
				default:
					break batch
				}
			}
		case err := <-lp.returnCh:
			lp.redrawCb(finalRedraw)
			return err
		case <-lp.redrawCh:
		}
	}
}

func (lp *loop) takeRedrawFull() bool {
	lp.redrawMutex.Lock()
	defer lp.redrawMutex.Unlock()
	full := lp.redrawFull
	lp.redrawFull = false
	return full
}
