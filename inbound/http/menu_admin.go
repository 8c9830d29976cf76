package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"post-catering/catalog"
	"post-catering/common"
	"post-catering/common/constant"
	"post-catering/common/errs"
	"post-catering/common/otel"
	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

type MenuAdminHttp struct {
	Querier  *sqlgen.Queries
	Admin    *catalog.Admin
	Validate *validator.Validate

	itemColumns bool
	listLimit   int32
}

func RegisterMenuAdminHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	admin *catalog.Admin,
	validate *validator.Validate,
	itemColumns bool,
) *MenuAdminHttp {
	cfg.SetDefault("menu.admin_list_limit", 200)

	in := &MenuAdminHttp{
		Querier:  querier,
		Admin:    admin,
		Validate: validate,

		itemColumns: itemColumns,
		listLimit:   cfg.GetInt32("menu.admin_list_limit"),
	}

	mux.HandleFunc("POST /api/admin/menu/items", in.upsertItems)
	mux.HandleFunc("GET /api/admin/menu/items", in.listItems)
	mux.HandleFunc("GET /api/admin/menu/catalog-items", in.listCatalogItems)

	return in
}

func (in *MenuAdminHttp) upsertItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "MenuAdminHttp.upsertItems")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var payload any
	_ = json.NewDecoder(r.Body).Decode(&payload)

	result, validationErrors, err := in.Admin.UpsertNonFormalItems(ctx, payload)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to upsert menu items", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}
	if len(validationErrors) > 0 {
		slog.InfoContext(ctx, "menu item upsert rejected", traceIdAttr, slog.Any("errors", validationErrors))
		writeJSONResponse(w, http.StatusBadRequest, model.ErrorsResponse{Errors: validationErrors})
		return
	}

	slog.InfoContext(ctx, "menu items upserted", traceIdAttr, slog.Int("updated_count", result.UpdatedCount))

	writeJSONResponse(w, http.StatusOK, result)
}

func (in *MenuAdminHttp) listItems(w http.ResponseWriter, r *http.Request) {
	in.writeItemList(w, r, "MenuAdminHttp.listItems", in.listLimit)
}

type listCatalogItemsRequest struct {
	Limit int32 `validate:"gte=1,lte=500"`
}

func (in *MenuAdminHttp) listCatalogItems(w http.ResponseWriter, r *http.Request) {
	req := listCatalogItemsRequest{Limit: in.listLimit}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseInt(rawLimit, 10, 32)
		if err != nil {
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusBadRequest,
				Message: "Validation failed",
				Data:    map[string]any{"limit": "must be an integer"},
			})
			return
		}
		req.Limit = int32(limit)
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.writeItemList(w, r, "MenuAdminHttp.listCatalogItems", req.Limit)
}

func (in *MenuAdminHttp) writeItemList(w http.ResponseWriter, r *http.Request, spanName string, limit int32) {
	ctx, span := otel.Tracer.Start(r.Context(), spanName)
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var rows []sqlgen.AdminMenuItemRow
	var err error
	if in.itemColumns {
		rows, err = in.Querier.ListMenuItems(ctx, limit)
	} else {
		rows, err = in.Querier.ListMenuItemsLegacy(ctx, limit)
	}
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to list menu items", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	items := make([]model.AdminMenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.AdminMenuItem{
			ID:            row.ID,
			ItemKey:       row.ItemKey,
			ItemName:      row.ItemName,
			ItemType:      row.ItemType,
			ItemCategory:  row.ItemCategory,
			TrayPriceHalf: row.TrayPriceHalf,
			TrayPriceFull: row.TrayPriceFull,
			IsActive:      row.IsActive,
		})
	}

	writeJSONResponse(w, http.StatusOK, model.AdminMenuItemsResponse{Items: items})
}
