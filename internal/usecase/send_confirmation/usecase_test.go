package send_confirmation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kinetic-booking/internal/infra/email"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testOptions = Options{
	From:         "Kinetic <bookings@kinetic.example>",
	Subject:      "Your booking is confirmed",
	AddressLines: []string{"Kinetic Display Studio", "1200 Harbor Blvd"},
}

func newTestUseCase(t *testing.T, sender Sender) *UseCase {
	t.Helper()

	renderer, err := email.NewRenderer()
	require.NoError(t, err)
	return NewUseCase(renderer, sender, testOptions, nopLogger{})
}

func janeRequest() *Request {
	return &Request{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "9876543210",
		Company: "Acme",
		Date:    "January 15, 2026",
		Time:    "5:00 PM",
	}
}

func TestUseCase_Execute_SendsRenderedReceipt(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.To == "jane@x.com" &&
			msg.From == testOptions.From &&
			msg.Subject == testOptions.Subject &&
			assert.Contains(t, msg.HTML, "Jane Doe") &&
			assert.Contains(t, msg.HTML, "January 15, 2026") &&
			assert.Contains(t, msg.HTML, "1200 Harbor Blvd")
	})).Return("em_1", nil).Once()

	resp, err := newTestUseCase(t, sender).Execute(context.Background(), janeRequest())

	require.NoError(t, err)
	assert.Equal(t, "em_1", resp.ID)
	sender.AssertExpectations(t)
}

func TestUseCase_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"name", func(r *Request) { r.Name = "" }},
		{"email", func(r *Request) { r.Email = " " }},
		{"date", func(r *Request) { r.Date = "" }},
		{"time", func(r *Request) { r.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mockSender)
			req := janeRequest()
			tt.mutate(req)

			_, err := newTestUseCase(t, sender).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrMissingFields)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_OptionalFields(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("em_2", nil).Once()

	req := janeRequest()
	req.Phone = ""
	req.Company = ""

	_, err := newTestUseCase(t, sender).Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_ProviderFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("", errors.New("rate limited")).Once()

	_, err := newTestUseCase(t, sender).Execute(context.Background(), janeRequest())

	assert.ErrorIs(t, err, ErrSend)
	assert.Contains(t, err.Error(), "rate limited")
}
