package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"campus-connect/config"
)

// Message 待发送的纯文本邮件
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender 邮件发送接口，便于在 Service 中替换为 Mock
type Sender interface {
	Send(msg Message) error
}

// NewSender 根据配置创建 Sender；未配置 SMTP 时返回只记日志的实现
func NewSender(cfg *config.MailConfig, logger *zap.Logger) Sender {
	if !cfg.Enabled() {
		return &logSender{logger: logger}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpSender) Send(msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("收件人不能为空")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

type logSender struct {
	logger *zap.Logger
}

func (s *logSender) Send(msg Message) error {
	s.logger.Debug("未配置 SMTP，跳过邮件发送",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
