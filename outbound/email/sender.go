package email

import (
	"errors"
	"io"
	"net"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"post-catering/common/constant"
)

// Sender delivers a composed message over SMTP.
//
//go:generate mockgen -source=sender.go -destination=mocks/sender.go -package=mocks
type Sender interface {
	Send(m *gomail.Message) error
}

type GomailSender struct {
	dialer *gomail.Dialer
}

func NewGomailSender(host string, port int, username, password string, useTLS bool) *GomailSender {
	dialer := gomail.NewDialer(host, port, username, password)
	if !useTLS {
		dialer.TLSConfig = nil
		dialer.SSL = false
	}
	return &GomailSender{dialer: dialer}
}

func (s *GomailSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

// classifySendError maps a delivery error to a warning code and the matching
// "Inquiry saved, but ..." message. The inquiry itself is already persisted
// when these fire, so they surface as warnings rather than request failures.
func classifySendError(err error) (string, string) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return constant.WarnSmtpTimeout, "Inquiry saved, but email notification timed out."
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return constant.WarnSmtpConnectFailed, "Inquiry saved, but email notification could not connect to the SMTP server."
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return constant.WarnSmtpServerDisconnected, "Inquiry saved, but the SMTP server disconnected before completion."
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return constant.WarnSmtpAuthFailed, "Inquiry saved, but email notification failed SMTP authentication."
		case 450, 550, 551, 553:
			return constant.WarnSmtpRecipientRefused, "Inquiry saved, but the configured recipient address was refused by SMTP."
		default:
			return constant.WarnSmtpError, "Inquiry saved, but SMTP returned an error while sending notification."
		}
	}

	return constant.WarnEmailSendFailed, "Inquiry saved, but email notification failed unexpectedly."
}
