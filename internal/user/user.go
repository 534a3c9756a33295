// Package user stores each user's language and timezone.
package user

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"remindpro/internal/lang"
	"remindpro/internal/tzutil"
)

var ErrNotFound = errors.New("user: not found")

var (
	database *sql.DB

	// Defaults for users seen for the first time.
	DefaultLanguage = lang.Russian
	DefaultZone     = tzutil.Default
)

type User struct {
	ID       string
	Language lang.Language
	Zone     string
	Created  time.Time
}

// Location loads the user's zone, falling back to the default.
func (u User) Location() *time.Location { return tzutil.Load(u.Zone) }

func Init(db *sql.DB) {
	database = db
}

// Get returns a registered user.
func Get(id string) (User, error) {
	var u User
	var code string
	var created int64
	err := database.QueryRow(
		"SELECT id, language, timezone, created FROM users WHERE id = ?", id,
	).Scan(&u.ID, &code, &u.Zone, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return User{}, fmt.Errorf("user: get %s: %w", id, err)
	}
	u.Language = lang.ParseOr(code, DefaultLanguage)
	u.Created = time.Unix(created, 0)
	return u, nil
}

// Ensure registers id with the defaults if it is new and returns the user.
// hint, when set, is the language the client reports for the user.
func Ensure(id, hint string) (User, error) {
	l := lang.ParseOr(hint, DefaultLanguage)
	_, err := database.Exec(
		"INSERT OR IGNORE INTO users (id, language, timezone, created) VALUES (?, ?, ?, ?)",
		id, l.Code(), DefaultZone, time.Now().Unix(),
	)
	if err != nil {
		return User{}, fmt.Errorf("user: register %s: %w", id, err)
	}
	return Get(id)
}

// SetTimezone stores a validated IANA zone name.
func SetTimezone(id, zone string) error {
	if err := tzutil.Validate(zone); err != nil {
		return err
	}
	return update(id, "UPDATE users SET timezone = ? WHERE id = ?", zone)
}

func SetLanguage(id string, l lang.Language) error {
	if !l.Valid() {
		return lang.ErrUnsupported
	}
	return update(id, "UPDATE users SET language = ? WHERE id = ?", l.Code())
}

func update(id, query, value string) error {
	res, err := database.Exec(query, value, id)
	if err != nil {
		return fmt.Errorf("user: update %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of registered users.
func Count() (int, error) {
	var n int
	err := database.QueryRow("SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
