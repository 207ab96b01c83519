package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Form kinds and the element IDs each one renders
const (
	FormKindAddress = "endereco"
	FormKindJobRole = "cargo"
	FormKindCustom  = "custom"
)

// Element IDs of the address-change form
const (
	FieldCEP          = "id_cep"
	FieldStreet       = "id_rua"
	FieldNumber       = "id_numero"
	FieldNeighborhood = "id_bairro"
	FieldCity         = "id_cidade"
	FieldState        = "id_estado"
	FieldComplement   = "id_complemento"
)

// Element IDs of the job-role form
const (
	FieldCBO  = "id_cbo"
	FieldName = "id_nome"
)

// FormLayouts maps each built-in kind to its fields, in render order
var FormLayouts = map[string][]string{
	FormKindAddress: {FieldCEP, FieldStreet, FieldNumber, FieldNeighborhood, FieldCity, FieldState, FieldComplement},
	FormKindJobRole: {FieldName, FieldCBO},
}

// AddressRecord is the ViaCEP answer for one postal code
type AddressRecord struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	StateCode    string `json:"uf"`
	Error        Flag   `json:"erro"`
}

// Flag decodes a boolean that may arrive as a JSON bool or as a string.
// ViaCEP has answered both {"erro": true} and {"erro": "true"}.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = Flag(strings.EqualFold(strings.TrimSpace(s), "true"))
	return nil
}

// OccupationRecord is the BrasilAPI CBO answer. An empty Title means not found.
type OccupationRecord struct {
	Code  string `json:"codigo,omitempty"`
	Title string `json:"ocupacao"`
}

// CreateFormRequest is the body of POST /forms
type CreateFormRequest struct {
	Kind   string            `json:"kind" binding:"required"`
	Fields []string          `json:"fields"`
	Values map[string]string `json:"values"`
}

// SetFieldRequest is the body of PUT /forms/:id/fields/:field
type SetFieldRequest struct {
	Value string `json:"value"`
}

// FormState is the JSON view of a form session
type FormState struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Fields    map[string]string `json:"fields"`
	Alerts    []string          `json:"alerts"`
	Pending   int               `json:"pending"`
	ExpiresAt time.Time         `json:"expires_at"`
}
