package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"post-catering/catalog"
	"post-catering/guard"
	"post-catering/outbound/email"
	emailMock "post-catering/outbound/email/mocks"
	"post-catering/outbound/sqlgen"
)

func int32Ptr(v int32) *int32 { return &v }

type InquiryHttpTestSuite struct {
	suite.Suite

	Cfg *viper.Viper

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Sender *emailMock.MockSender
}

func (s *InquiryHttpTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}
	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Sender = emailMock.NewMockSender(gomock.NewController(s.T()))

	s.Cfg = viper.New()
	s.Cfg.Set("email.host", "smtp.example.com")
	s.Cfg.Set("email.username", "mailer@example.com")
	s.Cfg.Set("email.password", "secret")
	s.Cfg.Set("email.to", "owner@example.com")

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *InquiryHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestInquiryHttpTestSuite(t *testing.T) {
	suite.Run(t, new(InquiryHttpTestSuite))
}

func (s *InquiryHttpTestSuite) newInquiryHttp() *InquiryHttp {
	abuseGuard := guard.NewGuard(s.Cfg, guard.NewMemoryStore(), nil)
	resolver := catalog.NewConstraintResolver(s.Querier, true)
	notifier := email.NewNotifier(s.Cfg, s.Sender, nil)

	return RegisterInquiryHttp(http.NewServeMux(), s.PgxMock, s.Querier, abuseGuard, resolver, notifier)
}

const validInquiryBody = `{
	"full_name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "5551234567",
	"event_type": "Wedding",
	"event_date": "2026-06-15",
	"guest_count": 50,
	"budget": "2500",
	"service_interest": "Full Service Catering",
	"message": "Looking for catering for our reception.",
	"desired_menu_items": [{"name": "Brisket", "category": "entrees"}]
}`

func (s *InquiryHttpTestSuite) expectSuccessfulSave() {
	s.PgxMock.ExpectBegin()
	s.PgxMock.ExpectQuery(`INSERT INTO inquiries`).
		WithArgs(
			pgxmock.AnyArg(), // external_id
			"Jane Doe",
			"jane@example.com",
			"(555) 123-4567",
			"Wedding",
			"2026-06-15",
			int32Ptr(50),
			"$2,500",
			"Full Service Catering",
			"Looking for catering for our reception.",
			false,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	s.PgxMock.ExpectExec(`INSERT INTO inquiry_selections`).
		WithArgs(int64(42), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.PgxMock.ExpectCommit()
}

func (s *InquiryHttpTestSuite) TestSubmit() {
	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "honeypot silent accept",
			reqBody:        `{"company_website": "http://spam.example", "full_name": "Bot"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `{"inquiry_id":null,"email_sent":false}`,
		},
		{
			name:           "empty body accumulates every validation error",
			reqBody:        `{}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["full_name is required.","email is required.","message is required.","service_interest is required.","desired_menu_items is required."]}`,
		},
		{
			name: "selection count below minimum",
			reqBody: `{
				"full_name": "Jane Doe",
				"email": "jane@example.com",
				"message": "Tier menu please.",
				"service_interest": "Community Catering",
				"service_selection": {"level": "custom", "constraints": {"entrees": 2}},
				"desired_menu_items": [{"name": "Brisket", "category": "entrees"}]
			}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["Please select at least 2 entrees item(s)."]}`,
		},
		{
			name:    "insert failure returns generic message",
			reqBody: validInquiryBody,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery(`INSERT INTO inquiries`).
					WillReturnError(fmt.Errorf("database error"))
				s.PgxMock.ExpectRollback()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"errors":["Unable to process inquiry right now. Please try again later."]}`,
		},
		{
			name:    "success with both emails sent",
			reqBody: validInquiryBody,
			setupMock: func() {
				s.expectSuccessfulSave()
				s.Sender.EXPECT().Send(gomock.Any()).Return(nil).Times(2)
				s.PgxMock.ExpectExec(`UPDATE inquiries SET email_sent`).
					WithArgs(int64(42), true).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"inquiry_id":42,"email_sent":true,"owner_email_sent":true,"confirmation_email_sent":true}`,
		},
		{
			name:    "owner send failure surfaces warning and keeps email_sent false",
			reqBody: validInquiryBody,
			setupMock: func() {
				s.expectSuccessfulSave()
				gomock.InOrder(
					s.Sender.EXPECT().Send(gomock.Any()).Return(fmt.Errorf("smtp down")),
					s.Sender.EXPECT().Send(gomock.Any()).Return(nil),
				)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"inquiry_id":42,"email_sent":false,"owner_email_sent":false,"confirmation_email_sent":true,"warning":"Inquiry saved, but email notification failed unexpectedly.","warning_code":"email_send_failed","warning_codes":["email_send_failed"]}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			inquiryHttp := s.newInquiryHttp()

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			inquiryHttp.submit(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *InquiryHttpTestSuite) TestSubmitRateLimited() {
	inquiryHttp := s.newInquiryHttp()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(`{}`))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()

		inquiryHttp.submit(w, req)
		s.Equal(http.StatusBadRequest, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(`{}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()

	inquiryHttp.submit(w, req)

	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal(`{"errors":["Please wait before submitting another inquiry."]}`, strings.TrimSpace(w.Body.String()))
}

func (s *InquiryHttpTestSuite) TestSubmitDuplicateWindowSilentAccept() {
	inquiryHttp := s.newInquiryHttp()

	s.expectSuccessfulSave()
	s.Sender.EXPECT().Send(gomock.Any()).Return(nil).Times(2)
	s.PgxMock.ExpectExec(`UPDATE inquiries SET email_sent`).
		WithArgs(int64(42), true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	first := httptest.NewRecorder()
	inquiryHttp.submit(first, httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(validInquiryBody)))
	s.Equal(http.StatusCreated, first.Code)

	// Same contact and event details inside the window: accepted without a save.
	second := httptest.NewRecorder()
	inquiryHttp.submit(second, httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(validInquiryBody)))

	s.Equal(http.StatusAccepted, second.Code)
	s.Equal(`{"inquiry_id":null,"email_sent":false}`, strings.TrimSpace(second.Body.String()))

	s.NoError(s.PgxMock.ExpectationsWereMet())
}
