package constant

// Warning codes attached to abuse-guard verdicts and notification results.
// Operators filter logs on these, so the literals are load-bearing.
const (
	WarnInquiryAccepted         = "inquiry_accepted"
	WarnRateLimitMinute         = "rate_limit_minute"
	WarnRateLimitHour           = "rate_limit_hour"
	WarnSpamLinkThreshold       = "spam_link_threshold"
	WarnDuplicateSubmission     = "duplicate_submission_window"
	WarnEmailDomainBlocked      = "email_domain_blocked"
	WarnEmailDomainNotAllowed   = "email_domain_not_allowed"
	WarnEmailDomainUnreachable  = "email_domain_unreachable"
	WarnEmailConfigIncomplete   = "email_config_incomplete"
	WarnOwnerEmailConfigMissing = "owner_email_config_incomplete"
	WarnSmtpAuthFailed          = "smtp_auth_failed"
	WarnSmtpConnectFailed       = "smtp_connect_failed"
	WarnSmtpServerDisconnected  = "smtp_server_disconnected"
	WarnSmtpRecipientRefused    = "smtp_recipient_refused"
	WarnSmtpTimeout             = "smtp_timeout"
	WarnSmtpError               = "smtp_error"
	WarnEmailSendFailed         = "email_send_failed"
)

// User-facing warning strings returned alongside hard rejections.
const (
	MsgRateLimited        = "Please wait before submitting another inquiry."
	MsgSpamLinkThreshold  = "Unable to process this inquiry. Please contact us directly if the issue continues."
	MsgDomainBlocked      = "Please use a standard email domain for inquiry follow-up."
	MsgDomainNotAllowed   = "Please use an approved email domain for inquiry follow-up."
	MsgDomainUnreachable  = "Please provide an email address with a reachable domain."
	MsgSubmissionFailed   = "Unable to process inquiry right now. Please try again later."
	MsgSubmissionRejected = "Unable to process inquiry."
)

// Abuse-guard defaults, overridable through the inquiry.* config keys.
const (
	DefaultHoneypotField          = "company_website"
	DefaultRateLimitPerIPMinute   = 3
	DefaultRateLimitPerIPHour     = 12
	DefaultMaxLinks               = 2
	DefaultDuplicateWindowSeconds = 900
	DefaultAlertThreshold         = 10
	DefaultAlertWindowSeconds     = 60
)

var DefaultBlockedEmailDomains = []string{
	"mailinator.com",
	"tempmail.com",
	"10minutemail.com",
	"guerrillamail.com",
	"yopmail.com",
}
