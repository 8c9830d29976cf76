package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/viper"

	"post-catering/catalog"
	"post-catering/common"
	"post-catering/common/constant"
	"post-catering/common/errs"
	"post-catering/common/otel"
	"post-catering/model"
)

type MenuHttp struct {
	Store *catalog.PayloadStore

	source   string
	seedPath string
}

func RegisterMenuHttp(mux *http.ServeMux, cfg *viper.Viper, store *catalog.PayloadStore) *MenuHttp {
	cfg.SetDefault("menu.source", "db")
	cfg.SetDefault("menu.seed_path", "sql/menu_seed_payload.json")

	in := &MenuHttp{
		Store:    store,
		source:   cfg.GetString("menu.source"),
		seedPath: cfg.GetString("menu.seed_path"),
	}

	mux.HandleFunc("GET /api/menu/catalog", in.getCatalog)

	return in
}

type catalogDbResponse struct {
	Source string `json:"source"`
	*model.CatalogPayload
}

type catalogSeedResponse struct {
	Source            string          `json:"source"`
	MenuOptions       json.RawMessage `json:"menu_options"`
	FormalPlanOptions json.RawMessage `json:"formal_plan_options"`
	Menu              json.RawMessage `json:"menu"`
}

func (in *MenuHttp) getCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "MenuHttp.getCatalog")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if in.source == "db" {
		payload, err := in.Store.Load(ctx)
		if err != nil {
			common.UtilSpanError(span, err)
			slog.ErrorContext(ctx, "failed to load catalog payload", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			writeErrorResponse(w, err)
			return
		}
		if payload == nil {
			slog.WarnContext(ctx, "catalog payload missing from db", traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusInternalServerError,
				Message: "Menu config not found in DB. Run admin menu seed/migration endpoint or script.",
			})
			return
		}

		writeJSONResponse(w, http.StatusOK, catalogDbResponse{Source: "db", CatalogPayload: payload})
		return
	}

	fallback, ok := in.seedFilePayload(ctx)
	if !ok {
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusInternalServerError,
			Message: "Menu seed payload not found.",
		})
		return
	}

	fallback.Source = "seed-file"
	writeJSONResponse(w, http.StatusOK, fallback)
}

// seedFilePayload reads the on-disk seed document and remaps its legacy
// upper-case top-level keys to the storefront's lower-case ones.
func (in *MenuHttp) seedFilePayload(ctx context.Context) (catalogSeedResponse, bool) {
	response := catalogSeedResponse{
		MenuOptions:       json.RawMessage(`{}`),
		FormalPlanOptions: json.RawMessage(`[]`),
		Menu:              json.RawMessage(`{}`),
	}

	data, err := os.ReadFile(in.seedPath)
	if err != nil {
		slog.WarnContext(ctx, "failed to read menu seed file",
			slog.String("seed_path", in.seedPath),
			slog.Any(constant.LogFieldErr, err),
		)
		return response, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.WarnContext(ctx, "failed to parse menu seed file",
			slog.String("seed_path", in.seedPath),
			slog.Any(constant.LogFieldErr, err),
		)
		return response, false
	}

	pick := func(target *json.RawMessage, keys ...string) {
		for _, key := range keys {
			if value, ok := raw[key]; ok && !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
				*target = value
				return
			}
		}
	}
	pick(&response.MenuOptions, "MENU_OPTIONS", "menu_options")
	pick(&response.FormalPlanOptions, "FORMAL_PLAN_OPTIONS", "formal_plan_options")
	pick(&response.Menu, "MENU", "menu")

	return response, true
}
