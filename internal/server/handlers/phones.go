package handlers

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/AlexTLDR/phonenorm/internal/country"
	"github.com/AlexTLDR/phonenorm/internal/i18n"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

type countryResponse struct {
	Name           string `json:"name"`
	ISO            string `json:"iso"`
	DisplayName    string `json:"displayName"`
	CallingCode    int    `json:"callingCode"`
	ExitPrefix     string `json:"exitPrefix"`
	NationalPrefix string `json:"nationalPrefix"`
}

func newCountryResponse(c *country.Country, lang language.Tag) countryResponse {
	return countryResponse{
		Name:           c.Name(),
		ISO:            c.ISO(),
		DisplayName:    c.DisplayName(lang),
		CallingCode:    c.CallingCode(),
		ExitPrefix:     c.ExitPrefix(),
		NationalPrefix: c.NationalPrefix(),
	}
}

type numberResponse struct {
	Country               countryResponse `json:"country"`
	LocalNumber           string          `json:"localNumber"`
	Serialized            string          `json:"serialized"`
	National              string          `json:"national"`
	International         string          `json:"international"`
	InternationalExit     string          `json:"internationalExit"`
	InternationalNational string          `json:"internationalNational"`
	E164                  string          `json:"e164,omitempty"`
}

func newNumberResponse(n *phone.Number, lang language.Tag) numberResponse {
	resp := numberResponse{
		Country:               newCountryResponse(n.Country(), lang),
		LocalNumber:           n.LocalNumber(),
		Serialized:            n.Serialize(),
		National:              n.NationalForm(),
		International:         n.InternationalForm(),
		InternationalExit:     n.InternationalFormWithExitPrefix(),
		InternationalNational: n.InternationalNationalForm(),
	}
	// Numbers libphonenumber does not know are still valid here.
	if e164, err := n.E164(); err == nil {
		resp.E164 = e164
	}
	return resp
}

// HandleCountries lists the registry in canonical order.
func HandleCountries(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.DisplayLanguage(i18n.GetLanguageFromRequest(r))

		all := s.GetRegistry().All()
		countries := make([]countryResponse, 0, len(all))
		for _, c := range all {
			countries = append(countries, newCountryResponse(c, lang))
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"language":  lang.String(),
			"countries": countries,
		})
	}
}

type parseRequest struct {
	Text   string `json:"text" validate:"required,max=128"`
	Strict *bool  `json:"strict"`
}

// HandleParse parses a textual number and returns all of its renderings.
func HandleParse(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req parseRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		strict := s.GetConfig().StrictParsing
		if req.Strict != nil {
			strict = *req.Strict
		}

		n, err := s.GetParser().Parse(req.Text, strict)
		s.GetMetrics().ObserveParse(strict, err)
		if err != nil {
			s.GetLogger().ParseFailure("api", err)
			writeError(w, s, "parse", err)
			return
		}

		lang := i18n.DisplayLanguage(i18n.GetLanguageFromRequest(r))
		writeJSON(w, http.StatusOK, newNumberResponse(n, lang))
	}
}

type composeRequest struct {
	Country     string `json:"country" validate:"omitempty,max=64"`
	LocalNumber string `json:"localNumber" validate:"required,max=128"`
}

// HandleCompose builds a number from a local number. Without an explicit
// country, the session preference, then the client locale, then the
// configured default is used.
func HandleCompose(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req composeRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		c := s.DefaultCountry(r)
		if req.Country != "" {
			var err error
			if c, err = s.GetRegistry().ByName(req.Country); err != nil {
				writeError(w, s, "compose", err)
				return
			}
		}

		n, err := phone.New(c, req.LocalNumber)
		if err != nil {
			writeError(w, s, "compose", err)
			return
		}

		lang := i18n.DisplayLanguage(i18n.GetLanguageFromRequest(r))
		writeJSON(w, http.StatusOK, newNumberResponse(n, lang))
	}
}

// HandleFormat renders a serialized number in the requested form,
// international by default.
func HandleFormat(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		n, err := s.GetParser().Unserialize(query.Get("value"))
		if err != nil {
			writeError(w, s, "format", err)
			return
		}

		form := phone.International
		if name := query.Get("form"); name != "" {
			if form, err = phone.ParseForm(name); err != nil {
				writeError(w, s, "format", err)
				return
			}
		}

		text, err := n.Format(form)
		if err != nil {
			writeError(w, s, "format", err)
			return
		}
		s.GetMetrics().ObserveFormat(string(form))

		writeJSON(w, http.StatusOK, map[string]string{
			"value": n.Serialize(),
			"form":  string(form),
			"text":  text,
		})
	}
}
