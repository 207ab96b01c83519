// Package form is a server-held stand-in for an HTML form: fields addressed
// by element ID, blur listeners, user-facing alerts and the asynchronous
// lookups started from those listeners.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrFieldNotFound = errors.New("field not found")
	ErrDuplicateID   = errors.New("duplicate field id")
)

// BlurListener is called when a field loses focus
type BlurListener func(ctx context.Context)

// Form holds the fields of one rendered form
type Form struct {
	id     string
	kind   string
	order  []string
	fields map[string]*Field
	alerts []string
	mu     sync.RWMutex

	// loop serializes continuations, the way a page event loop runs one callback at a time
	loop    sync.Mutex
	pending int
	idle    chan struct{}
	pmu     sync.Mutex
}

// Field is a single input element
type Field struct {
	form      *Form
	id        string
	value     string
	listeners []BlurListener
}

// New creates a form with empty fields for the given element IDs
func New(id, kind string, fieldIDs []string) (*Form, error) {
	f := &Form{
		id:     id,
		kind:   kind,
		fields: make(map[string]*Field, len(fieldIDs)),
	}

	for _, fid := range fieldIDs {
		if _, exists := f.fields[fid]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, fid)
		}
		f.fields[fid] = &Field{form: f, id: fid}
		f.order = append(f.order, fid)
	}

	return f, nil
}

func (f *Form) ID() string   { return f.id }
func (f *Form) Kind() string { return f.kind }

// Field looks an element up by ID
func (f *Form) Field(id string) (*Field, bool) {
	field, ok := f.fields[id]
	return field, ok
}

// FieldIDs returns the element IDs in render order
func (f *Form) FieldIDs() []string {
	return append([]string(nil), f.order...)
}

// Blur fires the blur listeners of a field
func (f *Form) Blur(ctx context.Context, id string) error {
	field, ok := f.Field(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}

	f.mu.RLock()
	listeners := append([]BlurListener(nil), field.listeners...)
	f.mu.RUnlock()

	for _, l := range listeners {
		l(ctx)
	}
	return nil
}

// Assign writes several fields at once. Nothing is written if any ID is unknown.
func (f *Form) Assign(values map[string]string) error {
	for id := range values {
		if _, ok := f.fields[id]; !ok {
			return fmt.Errorf("%w: %s", ErrFieldNotFound, id)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for id, v := range values {
		f.fields[id].value = v
	}
	return nil
}

// Alert records a user-facing notification
func (f *Form) Alert(message string) {
	f.mu.Lock()
	f.alerts = append(f.alerts, message)
	f.mu.Unlock()
}

// Alerts returns the notifications shown so far, oldest first
func (f *Form) Alerts() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.alerts...)
}

// Values returns a copy of every field value
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	values := make(map[string]string, len(f.fields))
	for id, field := range f.fields {
		values[id] = field.value
	}
	return values
}

// Go runs an asynchronous lookup. work runs concurrently with other lookups;
// the continuation it returns runs with every other continuation of this form excluded.
func (f *Form) Go(work func() func()) {
	f.pmu.Lock()
	if f.pending == 0 {
		f.idle = make(chan struct{})
	}
	f.pending++
	f.pmu.Unlock()

	go func() {
		defer f.finish()

		next := work()
		if next == nil {
			return
		}

		f.loop.Lock()
		defer f.loop.Unlock()
		next()
	}()
}

func (f *Form) finish() {
	f.pmu.Lock()
	defer f.pmu.Unlock()
	f.pending--
	if f.pending == 0 {
		close(f.idle)
	}
}

// Pending reports how many lookups have not finished yet
func (f *Form) Pending() int {
	f.pmu.Lock()
	defer f.pmu.Unlock()
	return f.pending
}

// Wait blocks until no lookup is in flight or ctx is done
func (f *Form) Wait(ctx context.Context) error {
	f.pmu.Lock()
	if f.pending == 0 {
		f.pmu.Unlock()
		return nil
	}
	idle := f.idle
	f.pmu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (fl *Field) ID() string { return fl.id }

func (fl *Field) Value() string {
	fl.form.mu.RLock()
	defer fl.form.mu.RUnlock()
	return fl.value
}

func (fl *Field) SetValue(v string) {
	fl.form.mu.Lock()
	fl.value = v
	fl.form.mu.Unlock()
}

// OnBlur registers a listener for the field losing focus
func (fl *Field) OnBlur(l BlurListener) {
	fl.form.mu.Lock()
	fl.listeners = append(fl.listeners, l)
	fl.form.mu.Unlock()
}
