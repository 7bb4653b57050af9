package services

import (
	"fmt"
	"rosea_server/structs"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends transactional mail. Everything here is best effort:
// the reset flow reports success to the caller whether or not a mail went
// out.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	if _, err := es.client.Emails.Send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendPasswordResetEmail points the user back at the storefront's reset
// page.
func (es *EmailService) SendPasswordResetEmail(user *structs.User) error {
	if es.cfg.Email.ApiKey == "" {
		es.logger.Warn("Email API key missing, skipping password reset email", gecho.Field("user_id", user.Id))
		return nil
	}

	resetLink := fmt.Sprintf("%s/reset-password?email=%s", es.cfg.Server.FrontendURL, user.Email)
	body := fmt.Sprintf(`
		<div dir="rtl" style="font-family: sans-serif;">
			<h2>مرحباً %s،</h2>
			<p>وصلنا طلب لإعادة تعيين كلمة المرور الخاصة بحسابك في Rosea.</p>
			<p><a href="%s">اضغط هنا لإعادة تعيين كلمة المرور</a></p>
			<p>إذا لم تطلب ذلك، تجاهل هذه الرسالة.</p>
		</div>
	`, user.Name, resetLink)

	return es.SendEmail([]string{user.Email}, "إعادة تعيين كلمة المرور - Rosea", body)
}
