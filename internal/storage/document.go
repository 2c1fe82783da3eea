package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodworkapp/goodwork/internal/profile"
)

// The whole profile document is persisted as one JSON blob under this key.
const documentKey = "profile"

// LoadDocument returns the stored profile document, or the all-empty default
// when none exists yet or the stored blob is corrupt.
func (s *Store) LoadDocument() (profile.Document, error) {
	var data string
	var version int64
	err := s.db.QueryRow(
		`SELECT data, version FROM profile_document WHERE key = ?`, documentKey,
	).Scan(&data, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.NewDocument(), nil
	}
	if err != nil {
		return profile.Document{}, fmt.Errorf("loading document: %w", err)
	}

	var doc profile.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		// Corrupt blob: fall back to defaults rather than failing the app.
		return profile.NewDocument(), nil
	}
	doc.Version = version
	return doc, nil
}

// SaveDocument persists the document, enforcing optimistic concurrency:
// the write succeeds only when doc.Version matches the stored version, and
// the stored version is incremented. On success doc reflects the new
// version. A mismatch returns ErrVersionConflict.
func (s *Store) SaveDocument(doc *profile.Document) error {
	now := time.Now().UTC()
	expected := doc.Version
	doc.UpdatedAt = now
	// Bump before marshalling so the stored blob's embedded version matches
	// the authoritative column.
	doc.Version = expected + 1

	data, err := json.Marshal(doc)
	if err != nil {
		doc.Version = expected
		return fmt.Errorf("marshalling document: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE profile_document
		SET data = ?, version = ?, updated_at = ?
		WHERE key = ? AND version = ?`,
		string(data), doc.Version, now.Format(time.RFC3339), documentKey, expected,
	)
	if err != nil {
		doc.Version = expected
		return fmt.Errorf("saving document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		doc.Version = expected
		return err
	}
	if n == 1 {
		return nil
	}

	// No row updated: either the document does not exist yet, or the
	// version moved under us.
	var stored int64
	err = s.db.QueryRow(`SELECT version FROM profile_document WHERE key = ?`, documentKey).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		if expected != 0 {
			doc.Version = expected
			return ErrVersionConflict
		}
		if _, err := s.db.Exec(`
			INSERT INTO profile_document (key, data, version, updated_at)
			VALUES (?, ?, 1, ?)`,
			documentKey, string(data), now.Format(time.RFC3339),
		); err != nil {
			doc.Version = expected
			return fmt.Errorf("inserting document: %w", err)
		}
		return nil
	}
	doc.Version = expected
	if err != nil {
		return fmt.Errorf("checking document version: %w", err)
	}
	return ErrVersionConflict
}

// ResetDocument deletes the stored document so the next load returns defaults.
func (s *Store) ResetDocument() error {
	_, err := s.db.Exec(`DELETE FROM profile_document WHERE key = ?`, documentKey)
	return err
}
