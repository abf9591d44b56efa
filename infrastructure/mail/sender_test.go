package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/infrastructure/mail/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSender(client sendClient) *SendGridSender {
	return &SendGridSender{
		client: client,
		from:   sgmail.NewEmail("Programa de Parceria", "parceria@loja.com.br"),
	}
}

func TestSendGridSender_SendVerificationCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMocksendClient(ctrl)
	client.EXPECT().Send(gomock.Any()).DoAndReturn(func(message *sgmail.SGMailV3) (*rest.Response, error) {
		require.Len(t, message.Personalizations, 1)
		require.Len(t, message.Personalizations[0].To, 1)
		assert.Equal(t, "ana@exemplo.com", message.Personalizations[0].To[0].Address)
		assert.Equal(t, verificationSubject, message.Subject)
		require.NotEmpty(t, message.Content)
		assert.Equal(t, "Seu codigo de verificacao e 042315. Ele expira em 5 minutos.", message.Content[0].Value)

		return &rest.Response{StatusCode: 202}, nil
	})

	err := newTestSender(client).SendVerificationCode(context.Background(), "ana@exemplo.com", "042315", 5*time.Minute)
	require.NoError(t, err)
}

func TestSendGridSender_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response *rest.Response
		err      error
	}{
		{"erro de rede", nil, errors.New("timeout")},
		{"status de erro", &rest.Response{StatusCode: 401, Body: "unauthorized"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMocksendClient(ctrl)
			client.EXPECT().Send(gomock.Any()).Return(tt.response, tt.err)

			err := newTestSender(client).SendVerificationCode(context.Background(), "ana@exemplo.com", "042315", time.Minute)
			assert.Error(t, err)
		})
	}
}

func TestSendGridSender_EmptyRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	err := newTestSender(mocks.NewMocksendClient(ctrl)).SendVerificationCode(context.Background(), "", "042315", time.Minute)
	assert.ErrorIs(t, err, ErrEmptyRecipient)

	assert.ErrorIs(t, LogSender{}.SendVerificationCode(context.Background(), "", "042315", time.Minute), ErrEmptyRecipient)
	assert.NoError(t, LogSender{}.SendVerificationCode(context.Background(), "ana@exemplo.com", "042315", time.Minute))
}
