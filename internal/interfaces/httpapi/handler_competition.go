package httpapi

import (
	"net/http"
	"strings"
)

type seasonQuery struct {
	Season string `validate:"omitempty,len=4,numeric"`
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListCompetitions")
	defer span.End()

	country := strings.TrimSpace(r.URL.Query().Get("country"))
	items, err := h.competitionService.List(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCompetition")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	item, err := h.competitionService.Get(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetCompetitionStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCompetitionStandings")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.competitionService.GetStandings(ctx, competitionID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "competition_id", competitionID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standings)
}

func (h *Handler) GetCompetitionTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCompetitionTopScorers")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		writeError(ctx, w, err)
		return
	}

	scorers, err := h.competitionService.GetTopScorers(ctx, competitionID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get top scorers failed", "competition_id", competitionID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorers)
}

func (h *Handler) GetCompetitionUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCompetitionUpcomingMatches")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.competitionService.GetUpcomingMatches(ctx, competitionID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get upcoming matches failed", "competition_id", competitionID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetCompetitionOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCompetitionOverview")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if err := h.validateRequest(ctx, seasonQuery{Season: season}); err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.competitionService.GetOverview(ctx, competitionID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition overview failed", "competition_id", competitionID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}
