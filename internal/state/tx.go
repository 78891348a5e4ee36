package state

import "database/sql"

// withTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func nullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
