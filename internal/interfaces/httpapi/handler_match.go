package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLiveMatches")
	defer span.End()

	matches, err := h.matchService.ListLive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) ListMatchesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatchesByDate")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	matches, err := h.matchService.ListByDate(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by date failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}
