package sqlgen

import (
	"context"
)

const insertInquiry = `
INSERT INTO inquiries (
  external_id,
  full_name,
  email,
  phone,
  event_type,
  event_date,
  guest_count,
  budget,
  service_interest,
  message,
  email_sent
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

type InsertInquiryParams struct {
	ExternalID      string
	FullName        string
	Email           string
	Phone           string
	EventType       string
	EventDate       string
	GuestCount      *int32
	Budget          string
	ServiceInterest string
	Message         string
	EmailSent       bool
}

func (q *Queries) InsertInquiry(ctx context.Context, arg InsertInquiryParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertInquiry,
		arg.ExternalID,
		arg.FullName,
		arg.Email,
		arg.Phone,
		arg.EventType,
		arg.EventDate,
		arg.GuestCount,
		arg.Budget,
		arg.ServiceInterest,
		arg.Message,
		arg.EmailSent,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const insertInquirySelection = `
INSERT INTO inquiry_selections (inquiry_id, service_selection, desired_menu_items)
VALUES ($1, $2, $3)
`

type InsertInquirySelectionParams struct {
	InquiryID        int64
	ServiceSelection []byte
	DesiredMenuItems []byte
}

func (q *Queries) InsertInquirySelection(ctx context.Context, arg InsertInquirySelectionParams) error {
	_, err := q.db.Exec(ctx, insertInquirySelection, arg.InquiryID, arg.ServiceSelection, arg.DesiredMenuItems)
	return err
}

const updateInquiryEmailSent = `
UPDATE inquiries SET email_sent = $2 WHERE id = $1
`

func (q *Queries) UpdateInquiryEmailSent(ctx context.Context, id int64, emailSent bool) error {
	_, err := q.db.Exec(ctx, updateInquiryEmailSent, id, emailSent)
	return err
}
