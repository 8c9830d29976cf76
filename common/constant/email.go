package constant

// Key of the persisted config blob holding operator-editable email copy.
const EmailContentConfigKey = "inquiry_email_content"

// Defaults used when the config blob is absent, malformed, or blank.
// The subject typo and the placeholder token are intentional: both are
// operator-facing content that the admin UI is expected to replace.
const (
	DefaultConfirmationSubject   = "Post 468 Catering Team - Inquiry Recieved"
	DefaultConfirmationOwnerNote = "[PLACEHOLDER_NOTE_FROM_ARIANNE] Thank you for your inquiry. We will be in touch soon."
)

const (
	EmailTypeOwnerNotification    = "owner_notification"
	EmailTypeCustomerConfirmation = "customer_confirmation"
)
