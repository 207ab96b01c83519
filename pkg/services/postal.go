package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/clients/viacep"
	"github.com/navarrastar/form-autofill/pkg/form"
	"github.com/navarrastar/form-autofill/pkg/models"
	"github.com/navarrastar/form-autofill/pkg/utils"
)

// PostalNotFoundMessage is shown when ViaCEP does not know the code
const PostalNotFoundMessage = "CEP não encontrado."

const postalCodeLength = 8

// PostalLookupHandler fills the address fields from the CEP field on blur
type PostalLookupHandler struct {
	form   *form.Form
	input  *form.Field
	client viacep.Client
	log    *zap.Logger
}

// AttachPostalLookup binds the handler to the CEP field of f.
// It returns nil, after logging, when the form has no CEP field.
func AttachPostalLookup(f *form.Form, client viacep.Client, log *zap.Logger) *PostalLookupHandler {
	input, ok := f.Field(models.FieldCEP)
	if !ok {
		log.Error("critical: postal code field not found",
			zap.String("form_id", f.ID()),
			zap.String("field", models.FieldCEP))
		return nil
	}

	h := &PostalLookupHandler{
		form:   f,
		input:  input,
		client: client,
		log:    log,
	}
	input.OnBlur(h.HandleBlur)
	return h
}

// HandleBlur starts a lookup when the field holds exactly 8 digits and returns
// without waiting for it. Overlapping lookups are not coordinated.
func (h *PostalLookupHandler) HandleBlur(ctx context.Context) {
	cep := utils.OnlyDigits(h.input.Value())
	if len(cep) != postalCodeLength {
		return
	}

	// The lookup outlives whatever triggered the blur
	ctx = context.WithoutCancel(ctx)

	h.form.Go(func() func() {
		record, err := h.client.LookupAddress(ctx, cep)
		return func() { h.apply(cep, record, err) }
	})
}

func (h *PostalLookupHandler) apply(cep string, record *models.AddressRecord, err error) {
	if err != nil {
		h.log.Error("postal code lookup failed", zap.String("cep", cep), zap.Error(err))
		return
	}

	if record.Error {
		h.log.Info("postal code not found", zap.String("cep", cep))
		h.form.Alert(PostalNotFoundMessage)
		return
	}

	err = h.form.Assign(map[string]string{
		models.FieldStreet:       record.Street,
		models.FieldNeighborhood: record.Neighborhood,
		models.FieldCity:         record.City,
		models.FieldState:        record.StateCode,
	})
	if err != nil {
		h.log.Error("could not fill address fields", zap.String("cep", cep), zap.Error(err))
		return
	}

	h.log.Debug("address fields filled", zap.String("cep", cep))
}
