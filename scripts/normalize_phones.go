package main

import (
	"database/sql"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"

	"github.com/AlexTLDR/phonenorm/internal/logger"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

type contact struct {
	id    int64
	phone string
}

type summary struct {
	total   int64
	updated int64
	failed  int64
}

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV"))

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./contacts.db"
	}

	strict := false
	if v := os.Getenv("STRICT_PARSING"); v != "" {
		var err error
		if strict, err = strconv.ParseBool(v); err != nil {
			log.Error("invalid STRICT_PARSING value", "error", err)
			os.Exit(1)
		}
	}

	db, err := openDatabase(dbPath)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sum, err := normalizeContacts(db, strict, log)
	if err != nil {
		log.Error("failed to normalize contacts", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total: %d\n", sum.total)
	fmt.Printf("  Updated: %d\n", sum.updated)
	fmt.Printf("  Failed: %d\n", sum.failed)
	fmt.Printf("  Unchanged: %d\n", sum.total-sum.updated-sum.failed)
}

// openDatabase opens the SQLite file with a single connection, so that
// concurrent updates queue instead of failing with "database is locked".
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// normalizePhone returns the serialized form of a stored phone and whether
// it differs from the stored value. Values already in serialized form are
// left alone.
func normalizePhone(stored string, strict bool) (string, bool, error) {
	if _, err := phone.Unserialize(stored); err == nil {
		return stored, false, nil
	}

	n, err := phone.Parse(stored, strict)
	if err != nil {
		return "", false, err
	}
	serialized := n.Serialize()
	return serialized, serialized != stored, nil
}

// normalizeContacts rewrites every contact phone to its serialized form.
// Running it again on its own output changes nothing.
func normalizeContacts(db *sql.DB, strict bool, log *logger.Logger) (summary, error) {
	contacts, err := loadContacts(db)
	if err != nil {
		return summary{}, err
	}

	fmt.Printf("Found %d contacts to process\n", len(contacts))

	var updated, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, c := range contacts {
		g.Go(func() error {
			serialized, changed, err := normalizePhone(c.phone, strict)
			if err != nil {
				log.ParseFailure(fmt.Sprintf("contact %d", c.id), err)
				fmt.Printf("Failed to parse phone %q (ID: %d): %v\n", c.phone, c.id, err)
				failed.Add(1)
				return nil
			}
			if !changed {
				return nil
			}

			if _, err := db.Exec("UPDATE contacts SET phone = ? WHERE id = ?", serialized, c.id); err != nil {
				log.DatabaseError("update contact phone", err)
				failed.Add(1)
				return nil
			}
			fmt.Printf("Updated ID %d: %q -> %q\n", c.id, c.phone, serialized)
			updated.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return summary{
		total:   int64(len(contacts)),
		updated: updated.Load(),
		failed:  failed.Load(),
	}, nil
}

func loadContacts(db *sql.DB) ([]contact, error) {
	rows, err := db.Query("SELECT id, phone FROM contacts WHERE phone IS NOT NULL AND phone <> ''")
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact
	for rows.Next() {
		var c contact
		if err := rows.Scan(&c.id, &c.phone); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
