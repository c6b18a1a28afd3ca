package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/matches", handler.ListMatchesByTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/summary", handler.GetTeamSummary)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/stats/preview", handler.PreviewStats)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("POST /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.RecordMatch)))
	mux.Handle("PUT /v1/matches/{matchID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatchStats)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/imports/matches", RequireAuth(verifier, http.HandlerFunc(handler.ImportMatches)))
	mux.Handle("POST /v1/matches/{matchID}/stats/from-image", RequireAuth(verifier, http.HandlerFunc(handler.ExtractMatchStatsFromImage)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeJob)))
}
