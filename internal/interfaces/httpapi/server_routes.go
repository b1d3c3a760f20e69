package httpapi

import "net/http"

const apiPrefix = "/api/v1"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET "+apiPrefix+"/competitions/{competitionID}", handler.GetCompetition)
	mux.HandleFunc("GET "+apiPrefix+"/competitions/{competitionID}/standings", handler.GetCompetitionStandings)
	mux.HandleFunc("GET "+apiPrefix+"/competitions/{competitionID}/top-scorers", handler.GetCompetitionTopScorers)
	mux.HandleFunc("GET "+apiPrefix+"/competitions/{competitionID}/upcoming-matches", handler.GetCompetitionUpcomingMatches)
	mux.HandleFunc("GET "+apiPrefix+"/competitions/{competitionID}/overview", handler.GetCompetitionOverview)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/matches", handler.ListMatchesByDate)
	mux.HandleFunc("GET "+apiPrefix+"/matches/live", handler.ListLiveMatches)
}

func registerTransferRoutes(mux *http.ServeMux, handler *Handler) {
	// Literal segments win over {transferID} in ServeMux precedence.
	mux.HandleFunc("GET "+apiPrefix+"/transfers/latest", handler.ListLatestTransfers)
	mux.HandleFunc("GET "+apiPrefix+"/transfers/top", handler.ListTopTransfers)
	mux.HandleFunc("GET "+apiPrefix+"/transfers/season/{season}", handler.ListTransfersBySeason)
	mux.HandleFunc("GET "+apiPrefix+"/transfers/player/{playerID}", handler.ListTransfersByPlayer)
	mux.HandleFunc("GET "+apiPrefix+"/transfers", handler.ListTransfers)
	mux.HandleFunc("POST "+apiPrefix+"/transfers", handler.CreateTransfer)
	mux.HandleFunc("GET "+apiPrefix+"/transfers/{transferID}", handler.GetTransfer)
	mux.HandleFunc("PUT "+apiPrefix+"/transfers/{transferID}", handler.UpdateTransfer)
	mux.HandleFunc("DELETE "+apiPrefix+"/transfers/{transferID}", handler.DeleteTransfer)
}
