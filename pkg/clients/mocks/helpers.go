package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockViaCEPClientForTest creates a ViaCEP client mock whose controller finishes with the test
func NewMockViaCEPClientForTest(t *testing.T) *MockViaCEPClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockViaCEPClient(ctrl)
}

// NewMockBrasilAPIClientForTest creates a BrasilAPI client mock whose controller finishes with the test
func NewMockBrasilAPIClientForTest(t *testing.T) *MockBrasilAPIClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBrasilAPIClient(ctrl)
}
