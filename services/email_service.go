// File: /services/email_service.go
package services

import (
	"fmt"

	"cleanworld-api/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "CleanWorld - ¡Bienvenido!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Bienvenido</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #16a34a; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌍 CleanWorld</h1>
        </div>
        <div class="content">
            <h2>¡Hola %s!</h2>
            <p>Tu cuenta está lista. Reporta zonas contaminadas, apúntate a eventos de limpieza y gana puntos canjeables por recompensas.</p>
            <p><strong>El equipo de CleanWorld</strong></p>
        </div>
        <div class="footer">
            <p>Este es un correo automático, por favor no respondas.</p>
        </div>
    </div>
</body>
</html>`, name)

	textBody := fmt.Sprintf(`¡Hola %s!

Tu cuenta de CleanWorld está lista. Reporta zonas contaminadas, apúntate a eventos de limpieza y gana puntos canjeables por recompensas.

El equipo de CleanWorld
`, name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendRedemptionEmail delivers a reward voucher code.
func (es *EmailService) SendRedemptionEmail(email, name, rewardTitle, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "CleanWorld - Tu recompensa")

	textBody := fmt.Sprintf(`¡Hola %s!

Has canjeado: %s

Tu código: %s

Gracias por mantener limpio tu entorno.
El equipo de CleanWorld
`, name, rewardTitle, code)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	fmt.Printf("📧 Redemption code sent to %s\n", email)
	return nil
}
