package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/navarrastar/form-autofill/pkg/clients/mocks"
	"github.com/navarrastar/form-autofill/pkg/form"
)

type jobRoleFixture struct {
	client *mocks.MockBrasilAPIClient
	logs   *observer.ObservedLogs
	form   *form.Form
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newForm(t *testing.T, kind string, ids []string) *form.Form {
	t.Helper()
	f, err := form.New("form-test", kind, ids)
	require.NoError(t, err)
	return f
}

func typeAndBlur(t *testing.T, f *form.Form, fieldID, value string) {
	t.Helper()
	field, ok := f.Field(fieldID)
	require.True(t, ok)
	field.SetValue(value)
	require.NoError(t, f.Blur(context.Background(), fieldID))
	require.NoError(t, f.Wait(context.Background()))
}
