package database

import (
	"database/sql"
	"fmt"

	"github.com/AlexTLDR/phonenorm/internal/phone"
)

const contactColumns = `id, name, email, office_phone, mobile_phone, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*Contact, error) {
	c := &Contact{}
	var office, mobile phone.NullNumber
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &office, &mobile, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.OfficePhone = office.Number
	c.MobilePhone = mobile.Number
	return c, nil
}

func nullable(n *phone.Number) phone.NullNumber {
	return phone.NullNumber{Number: n, Valid: n != nil}
}

// CreateContact inserts a contact and returns it as stored.
func (db *DB) CreateContact(name, email string, office, mobile *phone.Number) (*Contact, error) {
	row := db.QueryRow(
		`INSERT INTO contacts (name, email, office_phone, mobile_phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+contactColumns,
		name, email, nullable(office), nullable(mobile),
	)
	c, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return c, nil
}

// GetContactByID retrieves a contact by ID. The error wraps sql.ErrNoRows
// when the contact does not exist.
func (db *DB) GetContactByID(id int64) (*Contact, error) {
	row := db.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// ListContacts returns all contacts ordered by name.
func (db *DB) ListContacts() ([]*Contact, error) {
	rows, err := db.Query(`SELECT ` + contactColumns + ` FROM contacts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return collectContacts(rows)
}

// FindContactsByPhone returns the contacts having n as office or mobile phone.
func (db *DB) FindContactsByPhone(n *phone.Number) ([]*Contact, error) {
	rows, err := db.Query(
		`SELECT `+contactColumns+` FROM contacts
		 WHERE office_phone = $1 OR mobile_phone = $1
		 ORDER BY name, id`,
		n.Serialize(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find contacts by phone: %w", err)
	}
	return collectContacts(rows)
}

func collectContacts(rows *sql.Rows) ([]*Contact, error) {
	defer rows.Close()

	var contacts []*Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContact replaces the name, email and phones of a contact.
func (db *DB) UpdateContact(id int64, name, email string, office, mobile *phone.Number) (*Contact, error) {
	row := db.QueryRow(
		`UPDATE contacts
		 SET name = $1, email = $2, office_phone = $3, mobile_phone = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING `+contactColumns,
		name, email, nullable(office), nullable(mobile), id,
	)
	c, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return c, nil
}

// DeleteContact removes a contact. The error wraps sql.ErrNoRows when the
// contact does not exist.
func (db *DB) DeleteContact(id int64) error {
	result, err := db.Exec(`DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted contact: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete contact %d: %w", id, sql.ErrNoRows)
	}
	return nil
}
