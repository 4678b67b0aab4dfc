package handlers

import (
	"net/http"
	"strings"

	"github.com/AlexTLDR/phonenorm/internal/database"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

type contactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	OfficePhone string `json:"officePhone" validate:"omitempty,max=128"`
	MobilePhone string `json:"mobilePhone" validate:"omitempty,max=128"`
}

// contactFormData holds the parsed contact fields
type contactFormData struct {
	name   string
	email  string
	office *phone.Number
	mobile *phone.Number
}

// parsePhone parses an optional phone field. A blank field is no number.
func parsePhone(s Server, text string) (*phone.Number, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	strict := s.GetConfig().StrictParsing
	n, err := s.GetParser().Parse(text, strict)
	s.GetMetrics().ObserveParse(strict, err)
	return n, err
}

// parseContactRequest decodes and validates a contact body, writing the
// error response itself when it returns false.
func parseContactRequest(s Server, w http.ResponseWriter, r *http.Request) (*contactFormData, bool) {
	var req contactRequest
	if !decodeRequest(w, r, &req) {
		return nil, false
	}

	office, err := parsePhone(s, req.OfficePhone)
	if err != nil {
		writeError(w, s, "office phone", err)
		return nil, false
	}
	mobile, err := parsePhone(s, req.MobilePhone)
	if err != nil {
		writeError(w, s, "mobile phone", err)
		return nil, false
	}

	return &contactFormData{
		name:   strings.TrimSpace(req.Name),
		email:  strings.TrimSpace(req.Email),
		office: office,
		mobile: mobile,
	}, true
}

// pathID reads the {id} path value, writing a 400 when it is invalid.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contact ID"})
		return 0, false
	}
	return id, true
}

func writeContacts(w http.ResponseWriter, contacts []*database.Contact) {
	if contacts == nil {
		contacts = []*database.Contact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// HandleListContacts lists all contacts ordered by name
func HandleListContacts(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := s.GetStore().ListContacts()
		if err != nil {
			writeError(w, s, "list contacts", err)
			return
		}
		writeContacts(w, contacts)
	}
}

// HandleCreateContact creates a contact
func HandleCreateContact(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := parseContactRequest(s, w, r)
		if !ok {
			return
		}

		c, err := s.GetStore().CreateContact(data.name, data.email, data.office, data.mobile)
		if err != nil {
			writeError(w, s, "create contact", err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// HandleGetContact returns a single contact
func HandleGetContact(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		c, err := s.GetStore().GetContactByID(id)
		if err != nil {
			writeError(w, s, "get contact", err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// HandleUpdateContact replaces a contact
func HandleUpdateContact(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		data, ok := parseContactRequest(s, w, r)
		if !ok {
			return
		}

		c, err := s.GetStore().UpdateContact(id, data.name, data.email, data.office, data.mobile)
		if err != nil {
			writeError(w, s, "update contact", err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// HandleDeleteContact deletes a contact
func HandleDeleteContact(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := s.GetStore().DeleteContact(id); err != nil {
			writeError(w, s, "delete contact", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleSearchContacts finds the contacts owning the phone number given as
// free text. Both notations of the same number find the same contacts.
func HandleSearchContacts(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("phone")
		if strings.TrimSpace(text) == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "phone query parameter is required"})
			return
		}

		n, err := parsePhone(s, text)
		if err != nil {
			writeError(w, s, "search contacts", err)
			return
		}

		contacts, err := s.GetStore().FindContactsByPhone(n)
		if err != nil {
			writeError(w, s, "search contacts", err)
			return
		}
		writeContacts(w, contacts)
	}
}
