package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"post-catering/catalog"
	"post-catering/common"
	"post-catering/common/constant"
	"post-catering/common/contract"
	"post-catering/common/errs"
	"post-catering/common/otel"
	"post-catering/guard"
	"post-catering/model"
	"post-catering/outbound/email"
	"post-catering/outbound/sqlgen"
)

type InquiryHttp struct {
	Db       contract.DbConn
	Querier  *sqlgen.Queries
	Guard    *guard.Guard
	Resolver *catalog.ConstraintResolver
	Notifier *email.Notifier

	TimeNow func() time.Time
}

func RegisterInquiryHttp(
	mux *http.ServeMux,
	db contract.DbConn,
	querier *sqlgen.Queries,
	abuseGuard *guard.Guard,
	resolver *catalog.ConstraintResolver,
	notifier *email.Notifier,
) *InquiryHttp {
	in := &InquiryHttp{
		Db:       db,
		Querier:  querier,
		Guard:    abuseGuard,
		Resolver: resolver,
		Notifier: notifier,
		TimeNow:  time.Now,
	}

	mux.HandleFunc("POST /api/inquiries", in.submit)

	return in
}

func (in *InquiryHttp) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "InquiryHttp.submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	// A malformed body is treated as an empty submission so validation can
	// name every missing field instead of failing on the decode.
	raw := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&raw)

	inq := model.InquiryFromPayload(raw)
	slog.InfoContext(ctx, "inquiry submit receive request", traceIdAttr,
		slog.Bool("has_service_selection", !inq.ServiceSelection.IsZero()),
		slog.Int("desired_item_count", len(inq.DesiredMenuItems)),
		slog.Bool("has_message", inq.Message != ""),
	)

	verdict, err := in.Guard.Evaluate(ctx, inq, raw, clientIPFromRequest(r), r.UserAgent())
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to evaluate abuse guard", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeJSONResponse(w, http.StatusInternalServerError, model.ErrorsResponse{Errors: []string{constant.MsgSubmissionFailed}})
		return
	}

	if !verdict.Allow {
		logBlocked := slog.WarnContext
		if verdict.Alert {
			logBlocked = slog.ErrorContext
		}
		logBlocked(ctx, "inquiry submit blocked", traceIdAttr,
			slog.String("reason_code", verdict.WarningCode),
			slog.Int("status_code", verdict.StatusCode),
			slog.String("ip_hash", verdict.Meta.IPHash),
			slog.String("user_agent_hash", verdict.Meta.UserAgentHash),
		)

		if verdict.SilentAccept {
			writeJSONResponse(w, verdict.StatusCode, model.SilentAcceptResponse{})
			return
		}

		warning := verdict.Warning
		if warning == "" {
			warning = constant.MsgSubmissionRejected
		}
		writeJSONResponse(w, verdict.StatusCode, model.ErrorsResponse{Errors: []string{warning}})
		return
	}

	validationErrors := inq.Validate()

	constraints, err := in.Resolver.Resolve(ctx, inq.ServiceSelection)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to resolve selection constraints", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeJSONResponse(w, http.StatusInternalServerError, model.ErrorsResponse{Errors: []string{constant.MsgSubmissionFailed}})
		return
	}
	validationErrors = append(validationErrors, catalog.ValidateSelectionCounts(inq.DesiredMenuItems, constraints)...)

	if len(validationErrors) > 0 {
		slog.InfoContext(ctx, "inquiry submit validation failed", traceIdAttr,
			slog.Int("error_count", len(validationErrors)),
			slog.Any("errors", validationErrors),
		)
		writeErrorResponse(w, &errs.ValidationError{Messages: validationErrors})
		return
	}

	inq.ExternalID = ulid.Make().String()
	if err := in.saveInquiry(ctx, inq); err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to save inquiry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeJSONResponse(w, http.StatusInternalServerError, model.ErrorsResponse{Errors: []string{constant.MsgSubmissionFailed}})
		return
	}
	slog.InfoContext(ctx, "inquiry saved", traceIdAttr, slog.Int64("inquiry_id", inq.ID))

	if err := in.Guard.RecordSuccessfulSubmission(ctx, verdict); err != nil {
		slog.WarnContext(ctx, "failed to record duplicate key", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	notification := in.Notifier.SendInquiryNotifications(ctx, inq, in.TimeNow().UTC())

	if notification.OwnerEmailSent {
		if err := in.Querier.UpdateInquiryEmailSent(ctx, inq.ID, true); err != nil {
			slog.WarnContext(ctx, "failed to flip email_sent flag", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	logCompleted := slog.InfoContext
	if len(notification.WarningCodes) > 0 {
		logCompleted = slog.WarnContext
	}
	logCompleted(ctx, "inquiry submit completed", traceIdAttr,
		slog.Int64("inquiry_id", inq.ID),
		slog.Bool("owner_email_sent", notification.OwnerEmailSent),
		slog.Bool("confirmation_email_sent", notification.ConfirmationEmailSent),
		slog.Any("warning_codes", notification.WarningCodes),
	)

	response := model.InquirySubmitResponse{
		InquiryID:             inq.ID,
		EmailSent:             notification.OwnerEmailSent,
		OwnerEmailSent:        notification.OwnerEmailSent,
		ConfirmationEmailSent: notification.ConfirmationEmailSent,
	}
	if len(notification.WarningMessages) > 0 {
		response.Warning = notification.WarningMessages[0]
	}
	if len(notification.WarningCodes) > 0 {
		response.WarningCode = notification.WarningCodes[0]
		response.WarningCodes = notification.WarningCodes
	}

	writeJSONResponse(w, http.StatusCreated, response)
}

// saveInquiry writes the inquiry row and its structured-selection side row in
// one transaction, so a selection insert failure never leaves a bare inquiry.
func (in *InquiryHttp) saveInquiry(ctx context.Context, inq *model.Inquiry) error {
	tx, err := in.Db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	qtx := in.Querier.WithTx(tx)

	var guestCount *int32
	if inq.GuestCountSet {
		count := int32(inq.GuestCount)
		guestCount = &count
	}

	inquiryID, err := qtx.InsertInquiry(ctx, sqlgen.InsertInquiryParams{
		ExternalID:      inq.ExternalID,
		FullName:        inq.FullName,
		Email:           inq.Email,
		Phone:           inq.Phone,
		EventType:       inq.EventType,
		EventDate:       inq.EventDate,
		GuestCount:      guestCount,
		Budget:          inq.Budget,
		ServiceInterest: inq.ServiceInterest,
		Message:         inq.Message,
		EmailSent:       false,
	})
	if err != nil {
		return err
	}

	var serviceSelection []byte
	if !inq.ServiceSelection.IsZero() {
		serviceSelection, err = json.Marshal(inq.ServiceSelection)
		if err != nil {
			return err
		}
	}
	desiredItems, err := json.Marshal(inq.DesiredMenuItems)
	if err != nil {
		return err
	}

	err = qtx.InsertInquirySelection(ctx, sqlgen.InsertInquirySelectionParams{
		InquiryID:        inquiryID,
		ServiceSelection: serviceSelection,
		DesiredMenuItems: desiredItems,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	inq.ID = inquiryID
	return nil
}
