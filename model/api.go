package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// ErrorsResponse carries accumulated user-facing messages for validation
// failures and hard abuse rejections.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

type InquirySubmitResponse struct {
	InquiryID             int64    `json:"inquiry_id"`
	EmailSent             bool     `json:"email_sent"`
	OwnerEmailSent        bool     `json:"owner_email_sent"`
	ConfirmationEmailSent bool     `json:"confirmation_email_sent"`
	Warning               string   `json:"warning,omitempty"`
	WarningCode           string   `json:"warning_code,omitempty"`
	WarningCodes          []string `json:"warning_codes,omitempty"`
}

// SilentAcceptResponse implies acceptance without revealing that nothing was
// stored. inquiry_id is always null here.
type SilentAcceptResponse struct {
	InquiryID *int64 `json:"inquiry_id"`
	EmailSent bool   `json:"email_sent"`
}

// AdminMenuItem is the flat row shape the admin dashboard lists.
type AdminMenuItem struct {
	ID            int64   `json:"id"`
	ItemKey       string  `json:"item_key"`
	ItemName      string  `json:"item_name"`
	ItemType      *string `json:"item_type,omitempty"`
	ItemCategory  *string `json:"item_category,omitempty"`
	TrayPriceHalf *string `json:"tray_price_half,omitempty"`
	TrayPriceFull *string `json:"tray_price_full,omitempty"`
	IsActive      bool    `json:"is_active"`
}

type AdminMenuItemsResponse struct {
	Items []AdminMenuItem `json:"items"`
}
