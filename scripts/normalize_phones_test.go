package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexTLDR/phonenorm/internal/logger"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected string
		changed  bool
	}{
		{name: "international", stored: "+33 3 84 58 34 18", expected: "FRANCE/384583418", changed: true},
		{name: "exit prefix", stored: "0033 3 84 58 34 18", expected: "FRANCE/384583418", changed: true},
		{name: "already serialized", stored: "FRANCE/384583418", expected: "FRANCE/384583418"},
		{name: "serialized other case", stored: "France/384583418", expected: "France/384583418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serialized, changed, err := normalizePhone(tt.stored, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, serialized)
			assert.Equal(t, tt.changed, changed)

			again, changed, err := normalizePhone(serialized, false)
			require.NoError(t, err)
			assert.Equal(t, serialized, again)
			assert.False(t, changed)
		})
	}

	_, _, err := normalizePhone("+", false)
	assert.Error(t, err)
}

func TestNormalizeContactsTwice(t *testing.T) {
	db, err := openDatabase(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE contacts (id INTEGER PRIMARY KEY, phone TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO contacts (id, phone) VALUES
		(1, '+33 3 84 58 34 18'),
		(2, '0033 6 12 34 56 78'),
		(3, 'FRANCE/384583418'),
		(4, '+')`)
	require.NoError(t, err)

	log := logger.NewWithWriter(io.Discard, "error", "test")

	first, err := normalizeContacts(db, false, log)
	require.NoError(t, err)
	assert.Equal(t, summary{total: 4, updated: 2, failed: 1}, first)

	second, err := normalizeContacts(db, false, log)
	require.NoError(t, err)
	assert.Equal(t, summary{total: 4, updated: 0, failed: 1}, second)

	phones := map[int64]string{}
	rows, err := db.Query(`SELECT id, phone FROM contacts`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id int64
		var p string
		require.NoError(t, rows.Scan(&id, &p))
		phones[id] = p
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, map[int64]string{
		1: "FRANCE/384583418",
		2: "FRANCE/612345678",
		3: "FRANCE/384583418",
		4: "+",
	}, phones)
}
