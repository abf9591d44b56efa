// Package mail envia os códigos de verificação do aceite do termo
package mail

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

const verificationSubject = "Codigo de verificacao do termo de parceria"

var ErrEmptyRecipient = errors.New("destinatário vazio")

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks -source=sender.go
type CodeSender interface {
	SendVerificationCode(ctx context.Context, to string, code string, expiresIn time.Duration) error
}

type sendClient interface {
	Send(email *sgmail.SGMailV3) (*rest.Response, error)
}

type SendGridSender struct {
	client sendClient
	from   *sgmail.Email
}

func NewSendGridSender(apiKey string, fromAddress string, fromName string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromAddress),
	}
}

func (s *SendGridSender) SendVerificationCode(ctx context.Context, to string, code string, expiresIn time.Duration) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := verificationBody(code, expiresIn)
	message := sgmail.NewSingleEmail(
		s.from,
		verificationSubject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<p>%s</p>", body),
	)

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("erro ao enviar email pelo SendGrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid recusou o envio: status=%d, body=%s", response.StatusCode, response.Body)
	}

	logrus.WithFields(logrus.Fields{
		"status": response.StatusCode,
		"to":     to,
	}).Info("Código de verificação enviado")

	return nil
}

// LogSender substitui o SendGrid quando SENDGRID_API_KEY não está configurada
type LogSender struct{}

func (LogSender) SendVerificationCode(_ context.Context, to string, code string, expiresIn time.Duration) error {
	if to == "" {
		return ErrEmptyRecipient
	}

	logrus.WithFields(logrus.Fields{
		"to":   to,
		"code": code,
	}).Warnf("SendGrid não configurado; código válido por %s não foi enviado", expiresIn)

	return nil
}

func verificationBody(code string, expiresIn time.Duration) string {
	minutes := int(math.Ceil(expiresIn.Minutes()))
	return fmt.Sprintf("Seu codigo de verificacao e %s. Ele expira em %d minutos.", code, minutes)
}
