package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/clients/mocks"
	"github.com/navarrastar/form-autofill/pkg/form"
	"github.com/navarrastar/form-autofill/pkg/models"
)

func newFormService(t *testing.T, ttl time.Duration) (*FormService, *mocks.MockViaCEPClient, *mocks.MockBrasilAPIClient) {
	t.Helper()
	viaCEP := mocks.NewMockViaCEPClientForTest(t)
	brasilAPI := mocks.NewMockBrasilAPIClientForTest(t)
	return NewFormService(viaCEP, brasilAPI, ttl, zap.NewNop()), viaCEP, brasilAPI
}

func TestFormServiceCreateKinds(t *testing.T) {
	svc, _, _ := newFormService(t, time.Minute)

	address, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindAddress})
	require.NoError(t, err)
	assert.Equal(t, models.FormLayouts[models.FormKindAddress], address.Form.FieldIDs())

	custom, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindCustom, Fields: []string{"id_cbo"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"id_cbo"}, custom.Form.FieldIDs())
	assert.NotEqual(t, address.Form.ID(), custom.Form.ID())

	_, err = svc.Create(models.CreateFormRequest{Kind: "ferias"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = svc.Create(models.CreateFormRequest{Kind: models.FormKindCustom})
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = svc.Create(models.CreateFormRequest{Kind: models.FormKindJobRole, Values: map[string]string{"id_cep": "1"}})
	assert.ErrorIs(t, err, form.ErrFieldNotFound)
}

func TestFormServiceGet(t *testing.T) {
	svc, _, _ := newFormService(t, time.Minute)

	session, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindJobRole, Values: map[string]string{"id_nome": "Ana"}})
	require.NoError(t, err)

	got, err := svc.Get(session.Form.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, "Ana", got.Form.Values()["id_nome"])

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestFormServiceExpiry(t *testing.T) {
	svc, _, _ := newFormService(t, 20*time.Millisecond)

	session, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindAddress})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := svc.Get(session.Form.ID())
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestFormServiceGetExpiredBeforeCleanup(t *testing.T) {
	svc, _, _ := newFormService(t, time.Hour)

	session, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindAddress})
	require.NoError(t, err)
	session.ExpiresAt = time.Now().Add(-time.Second)

	_, err = svc.Get(session.Form.ID())
	assert.ErrorIs(t, err, ErrFormExpired)

	_, err = svc.Get(session.Form.ID())
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestFormServiceSetFieldAndBlur(t *testing.T) {
	svc, viaCEP, _ := newFormService(t, time.Minute)
	viaCEP.EXPECT().LookupAddress(gomock.Any(), "01310100").Return(paulista(), nil)

	session, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindAddress})
	require.NoError(t, err)
	id := session.Form.ID()

	_, err = svc.SetField(id, models.FieldCEP, "01310-100")
	require.NoError(t, err)

	_, err = svc.SetField(id, models.FieldCBO, "1")
	assert.ErrorIs(t, err, form.ErrFieldNotFound)

	session, err = svc.Blur(context.Background(), id, models.FieldCEP, true)
	require.NoError(t, err)

	state := Snapshot(session)
	assert.Equal(t, id, state.ID)
	assert.Equal(t, models.FormKindAddress, state.Kind)
	assert.Equal(t, "Av. Paulista", state.Fields[models.FieldStreet])
	assert.Equal(t, "SP", state.Fields[models.FieldState])
	assert.Zero(t, state.Pending)
	assert.Empty(t, state.Alerts)

	_, err = svc.Blur(context.Background(), id, "id_missing", false)
	assert.ErrorIs(t, err, form.ErrFieldNotFound)
}

func TestFormServiceBothHandlersOnOneForm(t *testing.T) {
	svc, viaCEP, brasilAPI := newFormService(t, time.Minute)
	viaCEP.EXPECT().LookupAddress(gomock.Any(), "01310100").Return(paulista(), nil)
	brasilAPI.EXPECT().LookupOccupation(gomock.Any(), "214205").Return(&models.OccupationRecord{Title: "Engenheiro"}, nil)

	fields := append(append([]string{}, models.FormLayouts[models.FormKindAddress]...), models.FieldCBO, models.FieldName)
	session, err := svc.Create(models.CreateFormRequest{Kind: models.FormKindCustom, Fields: fields})
	require.NoError(t, err)
	id := session.Form.ID()

	_, err = svc.SetField(id, models.FieldCEP, "01310100")
	require.NoError(t, err)
	_, err = svc.SetField(id, models.FieldCBO, "214205")
	require.NoError(t, err)

	_, err = svc.Blur(context.Background(), id, models.FieldCEP, false)
	require.NoError(t, err)
	session, err = svc.Blur(context.Background(), id, models.FieldCBO, true)
	require.NoError(t, err)

	values := session.Form.Values()
	assert.Equal(t, "São Paulo", values[models.FieldCity])
	assert.Equal(t, "Engenheiro", values[models.FieldName])
}
