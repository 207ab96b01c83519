package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/clients/brasilapi"
	"github.com/navarrastar/form-autofill/pkg/clients/viacep"
	"github.com/navarrastar/form-autofill/pkg/form"
	"github.com/navarrastar/form-autofill/pkg/models"
)

var (
	ErrFormNotFound = errors.New("form not found")
	ErrFormExpired  = errors.New("form expired")
	ErrUnknownKind  = errors.New("unknown form kind")
	ErrNoFields     = errors.New("custom form needs at least one field")
)

// FormSession is one rendered form with its lookup handlers attached
type FormSession struct {
	Form      *form.Form
	ExpiresAt time.Time
}

// FormService keeps the live form sessions
type FormService struct {
	viaCEPClient    viacep.Client
	brasilAPIClient brasilapi.Client
	sessions        map[string]*FormSession
	mu              sync.RWMutex
	timeout         time.Duration
	log             *zap.Logger
}

func NewFormService(viaCEPClient viacep.Client, brasilAPIClient brasilapi.Client, timeout time.Duration, log *zap.Logger) *FormService {
	return &FormService{
		viaCEPClient:    viaCEPClient,
		brasilAPIClient: brasilAPIClient,
		sessions:        make(map[string]*FormSession),
		timeout:         timeout,
		log:             log,
	}
}

// Create renders a form of the requested kind and attaches both lookup handlers
func (s *FormService) Create(req models.CreateFormRequest) (*FormSession, error) {
	var fieldIDs []string
	switch req.Kind {
	case models.FormKindCustom:
		if len(req.Fields) == 0 {
			return nil, ErrNoFields
		}
		fieldIDs = req.Fields
	default:
		layout, ok := models.FormLayouts[req.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
		}
		fieldIDs = layout
	}

	id := uuid.NewString()
	f, err := form.New(id, req.Kind, fieldIDs)
	if err != nil {
		return nil, err
	}
	if len(req.Values) > 0 {
		if err := f.Assign(req.Values); err != nil {
			return nil, err
		}
	}

	log := s.log.With(zap.String("form_id", id), zap.String("kind", req.Kind))

	postal := AttachPostalLookup(f, s.viaCEPClient, log)
	occupation := AttachOccupationLookup(f, s.brasilAPIClient, log)
	log.Info("form created",
		zap.Bool("postal_lookup", postal != nil),
		zap.Bool("occupation_lookup", occupation != nil))

	session := &FormSession{
		Form:      f,
		ExpiresAt: time.Now().Add(s.timeout),
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	time.AfterFunc(s.timeout, func() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
	})

	return session, nil
}

// Get returns a live session
func (s *FormService) Get(id string) (*FormSession, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrFormNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrFormExpired
	}

	return session, nil
}

// SetField types a value into a field
func (s *FormService) SetField(id, fieldID, value string) (*FormSession, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	field, ok := session.Form.Field(fieldID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", form.ErrFieldNotFound, fieldID)
	}
	field.SetValue(value)
	return session, nil
}

// Blur moves focus out of a field. With wait set it also blocks until the
// lookups of this form have settled or ctx is done.
func (s *FormService) Blur(ctx context.Context, id, fieldID string, wait bool) (*FormSession, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := session.Form.Blur(ctx, fieldID); err != nil {
		return nil, err
	}

	if wait {
		if err := session.Form.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Snapshot renders the JSON view of a session
func Snapshot(session *FormSession) models.FormState {
	return models.FormState{
		ID:        session.Form.ID(),
		Kind:      session.Form.Kind(),
		Fields:    session.Form.Values(),
		Alerts:    session.Form.Alerts(),
		Pending:   session.Form.Pending(),
		ExpiresAt: session.ExpiresAt,
	}
}
