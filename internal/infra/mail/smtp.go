package mail

import (
	"fmt"
	"net/smtp"
)

// SMTPNotifier は決済開始の通知メールを送る。
// 本文のテンプレート化はしない。宛先・件名・本文をそのまま送るだけ。
type SMTPNotifier struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

func NewSMTPNotifier(host string, port int, from string, username string, password string) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

func (n *SMTPNotifier) Notify(to string, subject string, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, to, subject, body)
	return smtp.SendMail(n.addr, n.auth, n.from, []string{to}, []byte(msg))
}
