package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStateRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/snapshot", handler.GetSnapshot)
	mux.HandleFunc("GET /v1/matches/{matchID}/summary", handler.GetMatchSummary)
}

func registerIntentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/intents/continent", handler.SelectContinent)
	mux.HandleFunc("POST /v1/intents/top-country", handler.SelectTopCountry)
	mux.HandleFunc("POST /v1/intents/country", handler.SelectCountry)
	mux.HandleFunc("POST /v1/intents/competition", handler.SelectCompetition)
	mux.HandleFunc("POST /v1/intents/featured-competition", handler.SelectFeaturedCompetition)
	mux.HandleFunc("POST /v1/intents/competition-tab", handler.SelectCompetitionTab)
	mux.HandleFunc("POST /v1/intents/match", handler.SelectMatch)
	mux.HandleFunc("POST /v1/intents/head-to-head", handler.LoadHead2Head)
	mux.HandleFunc("POST /v1/intents/team", handler.SelectTeam)
	mux.HandleFunc("POST /v1/intents/player", handler.SelectPlayer)
	mux.HandleFunc("POST /v1/intents/search", handler.SetSearchQuery)
	mux.HandleFunc("POST /v1/intents/matches", handler.SelectMatches)
	mux.HandleFunc("POST /v1/intents/date", handler.SelectDate)
	mux.HandleFunc("POST /v1/intents/back", handler.GoBack)
	mux.HandleFunc("POST /v1/intents/home", handler.GoHome)
}
