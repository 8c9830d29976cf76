package http

import (
	"net/http"
)

type healthResponse struct {
	Ok bool `json:"ok"`
}

func RegisterHealthHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, http.StatusOK, healthResponse{Ok: true})
	})
}
