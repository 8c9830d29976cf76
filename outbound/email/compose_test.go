package email

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"post-catering/model"
)

type ComposeTestSuite struct {
	suite.Suite

	inquiry     *model.Inquiry
	submittedAt time.Time
}

func (s *ComposeTestSuite) SetupTest() {
	s.inquiry = &model.Inquiry{
		ID:              42,
		FullName:        "Jordan Blake",
		Email:           "jordan@example.com",
		Phone:           "(312) 555-0148",
		EventType:       "Wedding Reception",
		EventDate:       "2026-06-15",
		GuestCount:      80,
		GuestCountSet:   true,
		Budget:          "$2,500-$5,000",
		ServiceInterest: "Full Service",
		Message:         "Looking forward to working with you.",
		ServiceSelection: model.ServiceSelection{
			Level: "tier",
			Title: "Gold Package",
			Price: "$38/person",
		},
		DesiredMenuItems: []model.DesiredMenuItem{
			{Name: "Roast Beef", Category: "entrees", TraySize: "Full", TrayPrice: "$120"},
			{Name: "Caesar Salad", Category: "salads"},
			{Name: "Garlic Mashed Potatoes", Category: "sides", TraySize: "Half"},
		},
	}
	s.submittedAt = time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
}

func TestComposeTestSuite(t *testing.T) {
	suite.Run(t, new(ComposeTestSuite))
}

func (s *ComposeTestSuite) TestFormatServiceSelection() {
	testCases := []struct {
		name     string
		sel      model.ServiceSelection
		expected string
	}{
		{
			name:     "level title and price",
			sel:      model.ServiceSelection{Level: "tier", Title: "Gold Package", Price: "$38/person"},
			expected: "Tier: Gold Package ($38/person)",
		},
		{
			name:     "no price",
			sel:      model.ServiceSelection{Level: "package", Title: "Buffet"},
			expected: "Package: Buffet",
		},
		{
			name:     "no level",
			sel:      model.ServiceSelection{Title: "Buffet", Price: "$20"},
			expected: "Buffet ($20)",
		},
		{
			name:     "no title",
			sel:      model.ServiceSelection{Level: "tier", Price: "$20"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, formatServiceSelection(tc.sel))
		})
	}
}

func (s *ComposeTestSuite) TestFormatEventDate() {
	s.Equal("Monday, June 15, 2026", formatEventDate("2026-06-15"))
	s.Equal("Friday, January 2, 2026", formatEventDate("2026-01-02"))
	s.Equal("next spring", formatEventDate("next spring"))
	s.Equal("", formatEventDate(""))
}

func (s *ComposeTestSuite) TestFormatDesiredItemsByCategory() {
	expected := "Entree/Protein:\n" +
		"- Roast Beef (Tray: Full, Price: $120)\n" +
		"\n" +
		"Salads:\n" +
		"- Caesar Salad\n" +
		"\n" +
		"Sides:\n" +
		"- Garlic Mashed Potatoes (Tray: Half)"
	s.Equal(expected, formatDesiredItemsByCategory(s.inquiry.DesiredMenuItems))
}

func (s *ComposeTestSuite) TestFormatDesiredItemsByCategoryEmpty() {
	s.Equal("- None provided", formatDesiredItemsByCategory(nil))
	s.Equal("- None provided", formatDesiredItemsByCategory([]model.DesiredMenuItem{{Name: ""}}))
}

func (s *ComposeTestSuite) TestNormalizeCategoryLabel() {
	testCases := []struct {
		category string
		expected string
	}{
		{"entree", "Entree/Protein"},
		{"proteins", "Entree/Protein"},
		{"sides", "Sides"},
		{"salads", "Salads"},
		{"starter", "Starters"},
		{"passed", "Passed Appetizers"},
		{"appetizers", "Appetizers"},
		{"", "Other"},
		{"chef specials", "Chef Specials"},
		{"sides_salads", "Sides Salads"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, normalizeCategoryLabel(tc.category))
	}
}

func (s *ComposeTestSuite) TestBuildOwnerNotification() {
	m := BuildOwnerNotification(s.inquiry, s.submittedAt, "noreply@post468.org", "owner@post468.org")

	s.Equal([]string{"New Catering Inquiry: Jordan Blake"}, m.GetHeader("Subject"))
	s.Equal([]string{"noreply@post468.org"}, m.GetHeader("From"))
	s.Equal([]string{"owner@post468.org"}, m.GetHeader("To"))
	s.Equal([]string{"jordan@example.com"}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	s.NoError(err)
	body := buf.String()

	s.Contains(body, "POST 468 CATERING INQUIRY")
	s.Contains(body, "Submitted Date: Monday, June 1, 2026")
	s.Contains(body, "Full Name: Jordan Blake")
	s.Contains(body, "Event Date: Monday, June 15, 2026")
	s.Contains(body, "Guest Count: 80")
	s.Contains(body, "Service Selection: Tier: Gold Package ($38/person)")
	s.Contains(body, "- Roast Beef (Tray: Full, Price: $120)")
	s.Contains(body, "Post 468 Catering Inquiry")
}

func (s *ComposeTestSuite) TestBuildOwnerNotificationNoReplyTo() {
	inq := *s.inquiry
	inq.Email = ""
	m := BuildOwnerNotification(&inq, s.submittedAt, "noreply@post468.org", "owner@post468.org")
	s.Empty(m.GetHeader("Reply-To"))
}

func (s *ComposeTestSuite) TestBuildCustomerConfirmation() {
	m := BuildCustomerConfirmation(s.inquiry, s.submittedAt, "noreply@post468.org", "owner@post468.org", "We will be in touch soon.", "Post 468 Catering Team - Inquiry Recieved")

	s.Equal([]string{"Post 468 Catering Team - Inquiry Recieved"}, m.GetHeader("Subject"))
	s.Equal([]string{"jordan@example.com"}, m.GetHeader("To"))
	s.Equal([]string{"owner@post468.org"}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	s.NoError(err)
	body := buf.String()

	s.Contains(body, "Hi Jordan Blake,")
	s.Contains(body, "Thank you for contacting American Legion Post 468 Catering.")
	s.Contains(body, "YOUR SUBMISSION")
	s.Contains(body, "- Event Date: Monday, June 15, 2026 (*Event time of day")
	s.Contains(body, "We will be in touch soon.")
}

func (s *ComposeTestSuite) TestBuildCustomerConfirmationFallbacks() {
	inq := *s.inquiry
	inq.ServiceSelection = model.ServiceSelection{}
	inq.EventDate = ""
	m := BuildCustomerConfirmation(&inq, s.submittedAt, "noreply@post468.org", "", "Note.", "Subject")

	s.Empty(m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	s.NoError(err)
	body := buf.String()

	s.Contains(body, "Service Selection: Not specified")
	s.Contains(body, "- Event Date: *Event time of day")
}
