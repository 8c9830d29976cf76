package email

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	"post-catering/common/constant"
	"post-catering/model"
)

// ConfigStore reads operator-editable config blobs out of the menu_config
// table.
type ConfigStore interface {
	GetMenuConfig(ctx context.Context, configKey string) ([]byte, error)
}

type NotificationResult struct {
	OwnerEmailSent        bool
	ConfirmationEmailSent bool
	WarningMessages       []string
	WarningCodes          []string
}

// Notifier sends the owner notification and customer confirmation for a
// saved inquiry. Delivery failures never fail the request; they come back
// as warning messages and codes on the result.
type Notifier struct {
	Sender Sender
	Config ConfigStore

	host                string
	port                int
	username            string
	password            string
	useTLS              bool
	toEmail             string
	fromEmail           string
	replyToEmail        string
	confirmationEnabled bool
}

func NewNotifier(cfg *viper.Viper, sender Sender, configStore ConfigStore) *Notifier {
	cfg.SetDefault("email.port", 587)
	cfg.SetDefault("email.use_tls", true)
	cfg.SetDefault("email.confirmation_enabled", true)

	n := &Notifier{
		Sender:              sender,
		Config:              configStore,
		host:                cfg.GetString("email.host"),
		port:                cfg.GetInt("email.port"),
		username:            cfg.GetString("email.username"),
		password:            cfg.GetString("email.password"),
		useTLS:              cfg.GetBool("email.use_tls"),
		toEmail:             cfg.GetString("email.to"),
		fromEmail:           cfg.GetString("email.from"),
		replyToEmail:        cfg.GetString("email.reply_to"),
		confirmationEnabled: cfg.GetBool("email.confirmation_enabled"),
	}
	if n.fromEmail == "" {
		n.fromEmail = n.username
	}
	if n.replyToEmail == "" {
		n.replyToEmail = n.toEmail
	}
	if n.Sender == nil {
		n.Sender = NewGomailSender(n.host, n.port, n.username, n.password, n.useTLS)
	}
	return n
}

type emailContentConfig struct {
	ConfirmationSubject string `json:"confirmation_subject"`
	OwnerNote           string `json:"owner_note"`
}

// confirmationEmailContent resolves the confirmation subject and owner note,
// falling back to the defaults when the config row is absent, malformed, or
// blank.
func (n *Notifier) confirmationEmailContent(ctx context.Context) (string, string) {
	subject := constant.DefaultConfirmationSubject
	ownerNote := constant.DefaultConfirmationOwnerNote
	if n.Config == nil {
		return subject, ownerNote
	}

	raw, err := n.Config.GetMenuConfig(ctx, constant.EmailContentConfigKey)
	if err != nil {
		slog.WarnContext(ctx, "Notifier.confirmationEmailContent load failed", slog.Any(constant.LogFieldErr, err))
		return subject, ownerNote
	}
	if len(raw) == 0 {
		return subject, ownerNote
	}

	var content emailContentConfig
	if err := json.Unmarshal(raw, &content); err != nil {
		return subject, ownerNote
	}
	if configured := strings.TrimSpace(content.ConfirmationSubject); configured != "" {
		subject = configured
	}
	if configured := strings.TrimSpace(content.OwnerNote); configured != "" {
		ownerNote = configured
	}
	return subject, ownerNote
}

func (n *Notifier) deliver(ctx context.Context, msg *gomail.Message, inquiryID int64, emailType string) (bool, string, string) {
	err := n.Sender.Send(msg)
	if err == nil {
		slog.InfoContext(ctx, "Notifier.deliver sent",
			slog.Int64("inquiry_id", inquiryID),
			slog.String("email_type", emailType),
			slog.String("smtp_host", n.host),
			slog.Int("smtp_port", n.port),
		)
		return true, "", ""
	}

	code, warning := classifySendError(err)
	slog.WarnContext(ctx, "Notifier.deliver failed",
		slog.Int64("inquiry_id", inquiryID),
		slog.String("email_type", emailType),
		slog.String("reason_code", code),
		slog.Any(constant.LogFieldErr, err),
		slog.String("smtp_host", n.host),
		slog.Int("smtp_port", n.port),
	)
	return false, warning, code
}

// SendInquiryNotifications delivers the owner notification and, when
// enabled, the customer confirmation for an already-saved inquiry.
func (n *Notifier) SendInquiryNotifications(ctx context.Context, inq *model.Inquiry, submittedAt time.Time) NotificationResult {
	if n.host == "" || n.username == "" || n.password == "" {
		slog.WarnContext(ctx, "Notifier.SendInquiryNotifications skipped, smtp config incomplete",
			slog.Int64("inquiry_id", inq.ID),
			slog.Bool("has_smtp_host", n.host != ""),
			slog.Bool("has_smtp_username", n.username != ""),
			slog.Bool("has_smtp_password", n.password != ""),
		)
		return NotificationResult{
			WarningMessages: []string{"Inquiry saved, but email notification is not configured."},
			WarningCodes:    []string{constant.WarnEmailConfigIncomplete},
		}
	}

	if n.toEmail == "" {
		slog.WarnContext(ctx, "Notifier.SendInquiryNotifications skipped, owner destination missing",
			slog.Int64("inquiry_id", inq.ID),
		)
		return NotificationResult{
			WarningMessages: []string{"Inquiry saved, but owner email destination is not configured."},
			WarningCodes:    []string{constant.WarnOwnerEmailConfigMissing},
		}
	}

	confirmationSubject, ownerNote := n.confirmationEmailContent(ctx)

	var result NotificationResult

	ownerMsg := BuildOwnerNotification(inq, submittedAt, n.fromEmail, n.toEmail)
	ownerSent, ownerWarning, ownerCode := n.deliver(ctx, ownerMsg, inq.ID, constant.EmailTypeOwnerNotification)
	result.OwnerEmailSent = ownerSent
	if ownerWarning != "" {
		result.WarningMessages = append(result.WarningMessages, ownerWarning)
	}
	if ownerCode != "" {
		result.WarningCodes = append(result.WarningCodes, ownerCode)
	}

	if !n.confirmationEnabled {
		slog.InfoContext(ctx, "Notifier.SendInquiryNotifications confirmation disabled",
			slog.Int64("inquiry_id", inq.ID),
		)
		return result
	}

	confirmationMsg := BuildCustomerConfirmation(inq, submittedAt, n.fromEmail, n.replyToEmail, ownerNote, confirmationSubject)
	confirmationSent, confirmationWarning, confirmationCode := n.deliver(ctx, confirmationMsg, inq.ID, constant.EmailTypeCustomerConfirmation)
	result.ConfirmationEmailSent = confirmationSent
	if confirmationWarning != "" {
		result.WarningMessages = append(result.WarningMessages, "Inquiry saved, but customer confirmation email could not be sent.")
	}
	if confirmationCode != "" {
		result.WarningCodes = append(result.WarningCodes, "customer_"+confirmationCode)
	}

	return result
}
