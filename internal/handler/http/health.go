package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
