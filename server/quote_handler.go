package server

import "net/http"

type quoteResponse struct {
	Text string `json:"text"`
}

// QuoteHandler returns the motivational phrase for the task screen. It
// never fails; fetch problems resolve to the fallback phrase.
func (s *Server) QuoteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, quoteResponse{Text: s.quotes.Fetch(r.Context())})
	}
}
