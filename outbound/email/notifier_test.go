package email

import (
	"context"
	"errors"
	"io"
	"net"
	"net/textproto"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"gopkg.in/gomail.v2"

	"post-catering/common/constant"
	"post-catering/model"
)

type fakeSender struct {
	sent []*gomail.Message
	errs []error
}

func (f *fakeSender) Send(m *gomail.Message) error {
	f.sent = append(f.sent, m)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

type fakeConfigStore struct {
	value []byte
	err   error
}

func (f *fakeConfigStore) GetMenuConfig(_ context.Context, _ string) ([]byte, error) {
	return f.value, f.err
}

type NotifierTestSuite struct {
	suite.Suite

	cfg     *viper.Viper
	sender  *fakeSender
	inquiry *model.Inquiry
	now     time.Time
}

func (s *NotifierTestSuite) SetupTest() {
	s.cfg = viper.New()
	s.cfg.Set("email.host", "smtp.example.com")
	s.cfg.Set("email.username", "mailer@example.com")
	s.cfg.Set("email.password", "secret")
	s.cfg.Set("email.to", "owner@post468.org")

	s.sender = &fakeSender{}
	s.inquiry = &model.Inquiry{
		ID:       7,
		FullName: "Jordan Blake",
		Email:    "jordan@example.com",
	}
	s.now = time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) newNotifier(store ConfigStore) *Notifier {
	return NewNotifier(s.cfg, s.sender, store)
}

func (s *NotifierTestSuite) TestBothEmailsSent() {
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.True(result.OwnerEmailSent)
	s.True(result.ConfirmationEmailSent)
	s.Empty(result.WarningMessages)
	s.Empty(result.WarningCodes)
	s.Len(s.sender.sent, 2)

	s.Equal([]string{"owner@post468.org"}, s.sender.sent[0].GetHeader("To"))
	s.Equal([]string{"jordan@example.com"}, s.sender.sent[1].GetHeader("To"))
	s.Equal([]string{constant.DefaultConfirmationSubject}, s.sender.sent[1].GetHeader("Subject"))
	s.Equal([]string{"owner@post468.org"}, s.sender.sent[1].GetHeader("Reply-To"))
}

func (s *NotifierTestSuite) TestFromDefaultsToUsername() {
	s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)
	s.Equal([]string{"mailer@example.com"}, s.sender.sent[0].GetHeader("From"))
}

func (s *NotifierTestSuite) TestMissingSmtpConfig() {
	s.cfg.Set("email.password", "")
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.False(result.OwnerEmailSent)
	s.False(result.ConfirmationEmailSent)
	s.Equal([]string{"Inquiry saved, but email notification is not configured."}, result.WarningMessages)
	s.Equal([]string{constant.WarnEmailConfigIncomplete}, result.WarningCodes)
	s.Empty(s.sender.sent)
}

func (s *NotifierTestSuite) TestMissingOwnerDestination() {
	s.cfg.Set("email.to", "")
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.False(result.OwnerEmailSent)
	s.Equal([]string{"Inquiry saved, but owner email destination is not configured."}, result.WarningMessages)
	s.Equal([]string{constant.WarnOwnerEmailConfigMissing}, result.WarningCodes)
	s.Empty(s.sender.sent)
}

func (s *NotifierTestSuite) TestOwnerSendFailureStillSendsConfirmation() {
	s.sender.errs = []error{&textproto.Error{Code: 535, Msg: "authentication failed"}}
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.False(result.OwnerEmailSent)
	s.True(result.ConfirmationEmailSent)
	s.Equal([]string{"Inquiry saved, but email notification failed SMTP authentication."}, result.WarningMessages)
	s.Equal([]string{constant.WarnSmtpAuthFailed}, result.WarningCodes)
	s.Len(s.sender.sent, 2)
}

func (s *NotifierTestSuite) TestConfirmationFailureWarning() {
	s.sender.errs = []error{nil, io.EOF}
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.True(result.OwnerEmailSent)
	s.False(result.ConfirmationEmailSent)
	s.Equal([]string{"Inquiry saved, but customer confirmation email could not be sent."}, result.WarningMessages)
	s.Equal([]string{"customer_" + constant.WarnSmtpServerDisconnected}, result.WarningCodes)
}

func (s *NotifierTestSuite) TestConfirmationDisabled() {
	s.cfg.Set("email.confirmation_enabled", false)
	result := s.newNotifier(&fakeConfigStore{}).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.True(result.OwnerEmailSent)
	s.False(result.ConfirmationEmailSent)
	s.Len(s.sender.sent, 1)
}

func (s *NotifierTestSuite) TestConfiguredEmailContent() {
	store := &fakeConfigStore{value: []byte(`{"confirmation_subject":"Thanks from Post 468","owner_note":"See you soon."}`)}
	s.newNotifier(store).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.Equal([]string{"Thanks from Post 468"}, s.sender.sent[1].GetHeader("Subject"))
}

func (s *NotifierTestSuite) TestEmailContentFallsBackOnError() {
	store := &fakeConfigStore{err: errors.New("db down")}
	s.newNotifier(store).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.Equal([]string{constant.DefaultConfirmationSubject}, s.sender.sent[1].GetHeader("Subject"))
}

func (s *NotifierTestSuite) TestEmailContentFallsBackOnMalformedJSON() {
	store := &fakeConfigStore{value: []byte(`{not json`)}
	s.newNotifier(store).SendInquiryNotifications(context.Background(), s.inquiry, s.now)

	s.Equal([]string{constant.DefaultConfirmationSubject}, s.sender.sent[1].GetHeader("Subject"))
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifySendError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{"timeout", timeoutErr{}, constant.WarnSmtpTimeout},
		{"connect refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, constant.WarnSmtpConnectFailed},
		{"server disconnected", io.EOF, constant.WarnSmtpServerDisconnected},
		{"auth failed", &textproto.Error{Code: 535, Msg: "bad credentials"}, constant.WarnSmtpAuthFailed},
		{"recipient refused", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, constant.WarnSmtpRecipientRefused},
		{"smtp error", &textproto.Error{Code: 452, Msg: "insufficient storage"}, constant.WarnSmtpError},
		{"unexpected", errors.New("boom"), constant.WarnEmailSendFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, warning := classifySendError(tc.err)
			if code != tc.expectedCode {
				t.Fatalf("expected code %q, got %q", tc.expectedCode, code)
			}
			if warning == "" {
				t.Fatal("expected a warning message")
			}
		})
	}
}
