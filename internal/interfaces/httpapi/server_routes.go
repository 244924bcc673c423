package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func authed(verifier TokenVerifier, fn http.HandlerFunc) http.Handler {
	return RequireAuth(verifier, fn)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/seasons/{seasonID}/draft", authed(verifier, handler.GetDraftBoard))
	mux.Handle("POST /v1/drafts/{draftID}/picks", authed(verifier, handler.MakePick))
	mux.Handle("GET /v1/seasons/{seasonID}/rosters", authed(verifier, handler.ListRosters))
	mux.Handle("GET /v1/seasons/{seasonID}/rosters/me", authed(verifier, handler.ListMyRoster))
}

func registerScoringRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/seasons/{seasonID}/scoring-rules", authed(verifier, handler.GetScoringRules))
	mux.Handle("GET /v1/seasons/{seasonID}/standings", authed(verifier, handler.GetStandings))
	mux.Handle("GET /v1/seasons/{seasonID}/periods/{periodID}/scores", authed(verifier, handler.ListPeriodScores))
	mux.Handle("GET /v1/seasons/{seasonID}/periods/{periodID}/lock", authed(verifier, handler.GetPeriodLock))
	// Commissioner only; enforced in the handlers.
	mux.Handle("POST /v1/seasons/{seasonID}/periods/{periodID}/outcomes", authed(verifier, handler.RecordOutcome))
	mux.Handle("DELETE /v1/seasons/{seasonID}/outcomes/{outcomeID}", authed(verifier, handler.DeleteOutcome))
	mux.Handle("POST /v1/seasons/{seasonID}/periods/{periodID}/recalculate", authed(verifier, handler.RecalculatePeriod))
	mux.Handle("POST /v1/seasons/{seasonID}/recalculate", authed(verifier, handler.RecalculateSeason))
}
