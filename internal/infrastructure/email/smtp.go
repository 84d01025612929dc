package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// SMTPNotifier sends assignment notifications to responsaveis. When email
// is disabled in config it degrades to a logged no-op.
type SMTPNotifier struct {
	cfg     config.EmailConfig
	baseURL string
	dialer  *gomail.Dialer
	logger  logger.Interface
}

func NewSMTPNotifier(cfg config.EmailConfig, baseURL string, logger logger.Interface) *SMTPNotifier {
	var dialer *gomail.Dialer
	if cfg.Enabled {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}

	return &SMTPNotifier{
		cfg:     cfg,
		baseURL: baseURL,
		dialer:  dialer,
		logger:  logger,
	}
}

func (s *SMTPNotifier) NotifyAssignment(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error {
	if !s.cfg.Enabled {
		s.logger.Debugw("email disabled, skipping assignment notification", "ticket_id", ticketID, "to", toEmail)
		return nil
	}

	ticketURL := fmt.Sprintf("%s/admin/chamados/%d", s.baseURL, ticketID)

	subject := fmt.Sprintf("Chamado #%d atribuído a você", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Olá %s,</p>
			<p>O chamado <strong>%s</strong> foi atribuído a você.</p>
			<p><a href="%s">Abrir chamado</a></p>
		</body>
		</html>
	`, toName, ticketNome, ticketURL)

	plainBody := fmt.Sprintf("Olá %s,\n\nO chamado \"%s\" foi atribuído a você.\n\n%s\n", toName, ticketNome, ticketURL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}

	s.logger.Infow("assignment notification sent", "ticket_id", ticketID, "to", toEmail)
	return nil
}
