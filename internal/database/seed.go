package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default user if none exists. The user will be prompted
// to set up 2FA on first login (totp_enabled = false).
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default password.
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default user. 2FA is not enabled — they must set it up on
	// first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, totp_enabled)
		VALUES ($1, $2, $3, $4)
	`, "builder@siteforge.local", string(hash), "Builder", false)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	slog.Info("database seeded with default user",
		"email", "builder@siteforge.local",
		"password", "changeme",
	)

	return nil
}
