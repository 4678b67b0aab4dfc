package server

import (
	"net/http"

	"github.com/AlexTLDR/phonenorm/internal/country"
	"github.com/AlexTLDR/phonenorm/internal/i18n"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

const (
	preferencesSession = "phonenorm-preferences"
	countryKey         = "country"
)

// PreferredCountry implements handlers.Server interface
func (s *Server) PreferredCountry(r *http.Request) *country.Country {
	session, _ := s.sessionStore.Get(r, preferencesSession)

	name, ok := session.Values[countryKey].(string)
	if !ok || name == "" {
		return nil
	}

	// A country dropped from the table since the cookie was written is no
	// preference at all.
	c, err := s.registry.ByName(name)
	if err != nil {
		return nil
	}
	return c
}

// SetPreferredCountry implements handlers.Server interface
func (s *Server) SetPreferredCountry(w http.ResponseWriter, r *http.Request, c *country.Country) error {
	session, _ := s.sessionStore.Get(r, preferencesSession)
	session.Values[countryKey] = c.Name()
	return session.Save(r, w)
}

// DefaultCountry implements handlers.Server interface
func (s *Server) DefaultCountry(r *http.Request) *country.Country {
	resolver := localeResolver{Registry: s.registry, fallback: s.fallback}
	return phone.DefaultCountry(resolver, s.PreferredCountry(r), i18n.ClientTag(r))
}

// localeResolver replaces the registry fallback with the configured one.
type localeResolver struct {
	*country.Registry
	fallback *country.Country
}

func (l localeResolver) Fallback() *country.Country {
	return l.fallback
}
