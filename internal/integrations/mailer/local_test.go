package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sendConfirmation "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"
)

type mockConfirmationUseCase struct {
	mock.Mock
}

func (m *mockConfirmationUseCase) Execute(ctx context.Context, req *sendConfirmation.Request) (*sendConfirmation.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*sendConfirmation.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestLocalClient_SendConfirmation_CallsUseCase(t *testing.T) {
	uc := new(mockConfirmationUseCase)
	uc.On("Execute", mock.Anything, &sendConfirmation.Request{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "9876543210",
		Company: "Acme",
		Date:    "January 15, 2026",
		Time:    "5:00 PM",
	}).Return(&sendConfirmation.Response{ID: "em_1"}, nil).Once()

	err := NewLocalClient(uc, nopLogger{}).SendConfirmation(context.Background(), janeConfirmation())

	require.NoError(t, err)
	uc.AssertExpectations(t)
}

func TestLocalClient_SendConfirmation_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		ucErr   error
		wantErr error
	}{
		{"missing fields", sendConfirmation.ErrMissingFields, ErrRejected},
		{"provider failure", errors.Join(sendConfirmation.ErrSend, errors.New("provider down")), ErrSendFailed},
		{"render failure", sendConfirmation.ErrRender, ErrSendFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockConfirmationUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()

			err := NewLocalClient(uc, nopLogger{}).SendConfirmation(context.Background(), janeConfirmation())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocalClient_SendConfirmation_ManyInARow(t *testing.T) {
	uc := new(mockConfirmationUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&sendConfirmation.Response{ID: "em"}, nil).Times(10)

	client := NewLocalClient(uc, nopLogger{})
	for i := 0; i < 10; i++ {
		require.NoError(t, client.SendConfirmation(context.Background(), janeConfirmation()))
	}
	uc.AssertExpectations(t)
}
