package handlers

import (
	"net/http"

	"github.com/AlexTLDR/phonenorm/internal/i18n"
)

type preferenceRequest struct {
	Country string `json:"country" validate:"required,max=64"`
}

// HandleGetPreferredCountry returns the session preference and the country
// currently applied to bare local numbers.
func HandleGetPreferredCountry(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.DisplayLanguage(i18n.GetLanguageFromRequest(r))

		resp := map[string]any{
			"preferred": nil,
			"effective": newCountryResponse(s.DefaultCountry(r), lang),
		}
		if c := s.PreferredCountry(r); c != nil {
			resp["preferred"] = newCountryResponse(c, lang)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandlePutPreferredCountry stores the preferred country in the session.
func HandlePutPreferredCountry(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req preferenceRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		c, err := s.GetRegistry().ByName(req.Country)
		if err != nil {
			writeError(w, s, "preferences", err)
			return
		}

		if err := s.SetPreferredCountry(w, r, c); err != nil {
			writeError(w, s, "save session", err)
			return
		}

		lang := i18n.DisplayLanguage(i18n.GetLanguageFromRequest(r))
		writeJSON(w, http.StatusOK, map[string]any{"preferred": newCountryResponse(c, lang)})
	}
}
