package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/clients/brasilapi"
	"github.com/navarrastar/form-autofill/pkg/form"
	"github.com/navarrastar/form-autofill/pkg/models"
	"github.com/navarrastar/form-autofill/pkg/utils"
)

// OccupationNotFoundMessage is shown for any failed CBO lookup
const OccupationNotFoundMessage = "Código CBO não encontrado ou inválido."

// OccupationLookupHandler fills the name field from the CBO field on blur
type OccupationLookupHandler struct {
	form   *form.Form
	input  *form.Field
	output *form.Field
	client brasilapi.Client
	log    *zap.Logger
}

// AttachOccupationLookup binds the handler to the CBO and name fields of f.
// It returns nil when either field is missing.
func AttachOccupationLookup(f *form.Form, client brasilapi.Client, log *zap.Logger) *OccupationLookupHandler {
	input, ok := f.Field(models.FieldCBO)
	if !ok {
		return nil
	}
	output, ok := f.Field(models.FieldName)
	if !ok {
		return nil
	}

	h := &OccupationLookupHandler{
		form:   f,
		input:  input,
		output: output,
		client: client,
		log:    log,
	}
	input.OnBlur(h.HandleBlur)
	return h
}

// HandleBlur starts a lookup when the field holds at least one digit
func (h *OccupationLookupHandler) HandleBlur(ctx context.Context) {
	code := utils.OnlyDigits(h.input.Value())
	if code == "" {
		return
	}

	ctx = context.WithoutCancel(ctx)

	h.form.Go(func() func() {
		record, err := h.client.LookupOccupation(ctx, code)
		return func() { h.apply(code, record, err) }
	})
}

func (h *OccupationLookupHandler) apply(code string, record *models.OccupationRecord, err error) {
	if err == nil && record != nil && record.Title != "" {
		h.output.SetValue(record.Title)
		return
	}

	if err != nil {
		h.log.Error("error fetching CBO", zap.String("code", code), zap.Error(err))
	}
	h.form.Alert(OccupationNotFoundMessage)
}
