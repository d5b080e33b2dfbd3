// Package attempt models one verification attempt (one photo upload cycle)
// as an explicit value object with a linear state machine, so the pipeline
// is testable independent of any UI or transport.
package attempt

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/extract"
)

// State is the lifecycle tag of a verification attempt.
type State string

const (
	StateIdle          State = "IDLE"
	StatePhotoSelected State = "PHOTO_SELECTED"
	StateRecognizing   State = "RECOGNIZING"
	StateRecognized    State = "RECOGNIZED"
	StateSubmitting    State = "SUBMITTING"
	StateSucceeded     State = "SUCCEEDED"
	StateFailed        State = "FAILED"
)

// Transitions are linear; the only backward edges are Failed -> PhotoSelected
// (retry with a new photo) and terminal -> Idle (modal close).
var transitions = map[State][]State{
	StateIdle:          {StatePhotoSelected},
	StatePhotoSelected: {StateRecognizing, StateIdle},
	StateRecognizing:   {StateRecognized, StateFailed, StateIdle},
	StateRecognized:    {StateSubmitting, StateIdle},
	StateSubmitting:    {StateSucceeded, StateFailed},
	StateSucceeded:     {StateIdle},
	StateFailed:        {StatePhotoSelected, StateIdle},
}

// Attempt owns the extraction results of a single photo. It is discarded
// when the user selects a new photo or closes the dialog; recognition
// results arriving after Close are dropped.
type Attempt struct {
	mu sync.Mutex

	id       uuid.UUID
	activity constants.ActivityType

	state  State
	closed bool

	imagePath  string
	text       string
	confidence float32
	fields     extract.Fields
	category   constants.StoreCategory
}

func New(activity constants.ActivityType) *Attempt {
	return &Attempt{
		id:       uuid.New(),
		activity: activity,
		state:    StateIdle,
	}
}

func (a *Attempt) ID() uuid.UUID { return a.id }

func (a *Attempt) Activity() constants.ActivityType { return a.activity }

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// SelectPhoto resets the accumulator and moves to PhotoSelected. Selecting a
// new photo mid-flight starts a fresh cycle over the same attempt id.
func (a *Attempt) SelectPhoto(imagePath string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return fmt.Errorf("attempt %s is closed", a.id)
	}
	if a.state != StateIdle && a.state != StateFailed {
		if err := a.transitionLocked(StateIdle); err != nil {
			return err
		}
	}
	a.imagePath = imagePath
	a.text = ""
	a.confidence = 0
	a.fields = extract.Fields{}
	a.category = constants.StoreCategoryNone
	a.state = StatePhotoSelected
	return nil
}

// Transition moves the attempt along a legal edge.
func (a *Attempt) Transition(to State) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return fmt.Errorf("attempt %s is closed", a.id)
	}
	return a.transitionLocked(to)
}

func (a *Attempt) transitionLocked(to State) error {
	for _, allowed := range transitions[a.state] {
		if allowed == to {
			a.state = to
			return nil
		}
	}
	return fmt.Errorf("illegal transition %s -> %s", a.state, to)
}

// SetRecognition stores the OCR outcome. Results arriving after Close are
// discarded without mutating state; ok reports whether they were applied.
func (a *Attempt) SetRecognition(text string, confidence float32, fields extract.Fields, category constants.StoreCategory) (ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || a.state != StateRecognizing {
		return false
	}
	a.text = text
	a.confidence = confidence
	a.fields = fields
	a.category = category
	a.state = StateRecognized
	return true
}

// Close invalidates the attempt: no further mutation is applied.
func (a *Attempt) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.state = StateIdle
}

func (a *Attempt) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func (a *Attempt) ImagePath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.imagePath
}

func (a *Attempt) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

func (a *Attempt) Confidence() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.confidence
}

func (a *Attempt) Fields() extract.Fields {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fields
}

func (a *Attempt) Category() constants.StoreCategory {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.category
}
