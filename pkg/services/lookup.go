package services

import (
	"context"
	"errors"

	"github.com/navarrastar/form-autofill/pkg/clients/brasilapi"
	"github.com/navarrastar/form-autofill/pkg/clients/viacep"
	"github.com/navarrastar/form-autofill/pkg/models"
	"github.com/navarrastar/form-autofill/pkg/utils"
)

var (
	ErrInvalidPostalCode     = errors.New("postal code must have 8 digits")
	ErrPostalCodeNotFound    = errors.New("postal code not found")
	ErrInvalidOccupationCode = errors.New("occupation code must have digits")
	ErrOccupationNotFound    = errors.New("occupation code not found")
)

// LookupService answers single lookups outside of any form, applying the
// same code normalisation as the form handlers
type LookupService interface {
	LookupAddress(ctx context.Context, raw string) (*models.AddressRecord, error)
	LookupOccupation(ctx context.Context, raw string) (*models.OccupationRecord, error)
}

type lookupServiceImpl struct {
	viaCEPClient    viacep.Client
	brasilAPIClient brasilapi.Client
}

func NewLookupService(viaCEPClient viacep.Client, brasilAPIClient brasilapi.Client) LookupService {
	return &lookupServiceImpl{
		viaCEPClient:    viaCEPClient,
		brasilAPIClient: brasilAPIClient,
	}
}

func (s *lookupServiceImpl) LookupAddress(ctx context.Context, raw string) (*models.AddressRecord, error) {
	cep := utils.OnlyDigits(raw)
	if len(cep) != postalCodeLength {
		return nil, ErrInvalidPostalCode
	}

	record, err := s.viaCEPClient.LookupAddress(ctx, cep)
	if err != nil {
		return nil, err
	}
	if record.Error {
		return nil, ErrPostalCodeNotFound
	}
	return record, nil
}

func (s *lookupServiceImpl) LookupOccupation(ctx context.Context, raw string) (*models.OccupationRecord, error) {
	code := utils.OnlyDigits(raw)
	if code == "" {
		return nil, ErrInvalidOccupationCode
	}

	record, err := s.brasilAPIClient.LookupOccupation(ctx, code)
	if errors.Is(err, brasilapi.ErrNotFound) {
		return nil, ErrOccupationNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.Title == "" {
		return nil, ErrOccupationNotFound
	}
	return record, nil
}
