// Package reminder manages scheduled reminders backed by SQLite.
//
// Each active reminder has one in-memory timer. A fire event is claimed with a
// compare-and-swap on next_fire, so a timer and the recovery sweep racing on
// the same reminder deliver it once.
package reminder

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"remindpro/internal/recurrence"
	"remindpro/internal/tzutil"
)

const DefaultMaxPerUser = 50

var (
	ErrNotFound = errors.New("reminder: not found")
	ErrTooMany  = errors.New("reminder: too many active reminders")
	ErrInPast   = errors.New("reminder: first fire is not in the future")
)

// Notifier delivers a due reminder.
type Notifier func(r Reminder) error

var (
	database *sql.DB
	notify   Notifier
	now      = time.Now
	mu       sync.Mutex
	timers   = map[int64]*time.Timer{}

	MaxPerUser = DefaultMaxPerUser
)

// Image is an attached image stored with a reminder.
type Image struct {
	Filename string `json:"filename"`
	Data     string `json:"data"` // base64-encoded bytes
}

// Reminder is a scheduled reminder row loaded from SQLite. Anchor and
// NextFire carry the reminder's zone.
type Reminder struct {
	ID            int64
	UserID        string
	ChannelID     string
	GuildID       string
	Text          string
	Images        []Image
	Zone          string
	Anchor        time.Time
	NextFire      time.Time
	Repeat        recurrence.Spec
	Active        bool
	Paused        bool
	NotifiedCount int
	ErrorCount    int
	Created       time.Time
}

// Init loads all pending reminders from SQLite and schedules them.
// Must be called from main() after dg.Open(), because notifications need
// the session.
func Init(db *sql.DB, n Notifier) {
	database = db
	notify = n
	loadAndSchedule()
}

// SetClock replaces the clock used for scheduling decisions.
func SetClock(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	now = f
}

const columns = `id, user_id, channel_id, guild_id, text, images, timezone, anchor, next_fire,
	repeat_kind, weekdays, interval, active, paused, notified_count, error_count, created`

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Reminder, error) {
	var (
		r                     Reminder
		images                sql.NullString
		anchor, next, created int64
		kind, weekdays        string
		interval              int
		active, paused        bool
	)
	err := row.Scan(&r.ID, &r.UserID, &r.ChannelID, &r.GuildID, &r.Text, &images, &r.Zone,
		&anchor, &next, &kind, &weekdays, &interval, &active, &paused,
		&r.NotifiedCount, &r.ErrorCount, &created)
	if err != nil {
		return Reminder{}, err
	}
	loc := tzutil.Load(r.Zone)
	r.Anchor = time.Unix(anchor, 0).In(loc)
	r.NextFire = time.Unix(next, 0).In(loc)
	r.Created = time.Unix(created, 0).In(loc)
	r.Active, r.Paused = active, paused

	r.Repeat.Kind, err = recurrence.ParseKind(kind)
	if err != nil {
		return r, fmt.Errorf("reminder %d: %w", r.ID, err)
	}
	r.Repeat.Weekdays, err = recurrence.ParseWeekdays(weekdays)
	if err != nil {
		return r, fmt.Errorf("reminder %d: %w", r.ID, err)
	}
	r.Repeat.Interval = interval

	if images.Valid && images.String != "" {
		if err := json.Unmarshal([]byte(images.String), &r.Images); err != nil {
			log.Printf("reminder: unmarshal images for id %d: %v", r.ID, err)
		}
	}
	return r, nil
}

func query(q string, args ...any) ([]Reminder, error) {
	rows, err := database.Query("SELECT "+columns+" FROM reminders "+q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			log.Printf("reminder: scan: %v", err)
			continue
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reminder: rows: %w", err)
	}
	return reminders, nil
}

func loadAndSchedule() {
	reminders, err := query("WHERE active = 1 AND paused = 0")
	if err != nil {
		log.Printf("reminder: failed to load pending reminders: %v", err)
		return
	}
	for _, r := range reminders {
		schedule(r)
	}
}

func schedule(r Reminder) {
	scheduleAt(r.ID, r.NextFire)
}

func scheduleAt(id int64, expected time.Time) {
	delay := max(expected.Sub(now()), 0)
	mu.Lock()
	if old, ok := timers[id]; ok {
		old.Stop()
	}
	timers[id] = time.AfterFunc(delay, func() { fire(id, expected) })
	mu.Unlock()
}

func unschedule(id int64) {
	mu.Lock()
	if t, ok := timers[id]; ok {
		t.Stop()
		delete(timers, id)
	}
	mu.Unlock()
}

func fire(id int64, expected time.Time) {
	mu.Lock()
	delete(timers, id)
	mu.Unlock()

	// The wall clock can lag the timer by a few milliseconds.
	if now().Before(expected) {
		scheduleAt(id, expected)
		return
	}
	if _, err := Fire(id, expected); err != nil {
		log.Printf("reminder: fire %d: %v", id, err)
	}
}

// Fire applies the fire transition for the occurrence due at expected. It
// reports false when another caller already applied it, or the reminder was
// paused, deleted, moved or is not due yet.
func Fire(id int64, expected time.Time) (bool, error) {
	tx, err := database.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	r, err := scan(tx.QueryRow("SELECT "+columns+" FROM reminders WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !r.Active || r.Paused || r.NextFire.Unix() != expected.Unix() || r.NextFire.After(now()) {
		return false, nil
	}

	next, repeats, err := recurrence.NextAfter(r.NextFire, now(), r.Repeat)
	if err != nil {
		return false, fmt.Errorf("next occurrence: %w", err)
	}
	var res sql.Result
	if repeats {
		res, err = tx.Exec(
			"UPDATE reminders SET next_fire = ?, notified_count = notified_count + 1 WHERE id = ? AND next_fire = ?",
			next.Unix(), id, expected.Unix(),
		)
	} else {
		res, err = tx.Exec(
			"UPDATE reminders SET active = 0, notified_count = notified_count + 1 WHERE id = ? AND next_fire = ?",
			id, expected.Unix(),
		)
	}
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	if repeats {
		r.NextFire = next.In(r.NextFire.Location())
		schedule(r)
	} else {
		unschedule(id)
	}
	if notify != nil {
		delivered := r
		delivered.NextFire = expected.In(r.NextFire.Location())
		if err := notify(delivered); err != nil {
			log.Printf("reminder: failed to send reminder %d: %v", id, err)
			if _, err := database.Exec("UPDATE reminders SET error_count = error_count + 1 WHERE id = ?", id); err != nil {
				log.Printf("reminder: count error for %d: %v", id, err)
			}
		}
	}
	return true, nil
}

// Add validates, stores and schedules r. The returned reminder carries the
// assigned ID.
func Add(r Reminder) (Reminder, error) {
	r.Repeat = r.Repeat.Normalize()
	if err := r.Repeat.Validate(); err != nil {
		return r, err
	}
	if strings.TrimSpace(r.Zone) == "" {
		r.Zone = r.Anchor.Location().String()
	}
	if err := tzutil.Validate(r.Zone); err != nil {
		return r, err
	}
	if r.NextFire.IsZero() {
		r.NextFire = r.Anchor
	}
	if !r.NextFire.After(now()) {
		return r, fmt.Errorf("%w: %s", ErrInPast, r.NextFire.Format(time.RFC3339))
	}

	var images sql.NullString
	if len(r.Images) > 0 {
		b, err := json.Marshal(r.Images)
		if err != nil {
			return r, fmt.Errorf("marshal images: %w", err)
		}
		images = sql.NullString{String: string(b), Valid: true}
	}

	tx, err := database.Begin()
	if err != nil {
		return r, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM reminders WHERE user_id = ? AND active = 1", r.UserID).Scan(&count); err != nil {
		return r, fmt.Errorf("count reminders: %w", err)
	}
	if MaxPerUser > 0 && count >= MaxPerUser {
		return r, fmt.Errorf("%w: limit %d", ErrTooMany, MaxPerUser)
	}

	r.Created = now()
	result, err := tx.Exec(
		`INSERT INTO reminders (user_id, channel_id, guild_id, text, images, timezone, anchor, next_fire,
			repeat_kind, weekdays, interval, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.ChannelID, r.GuildID, r.Text, images, r.Zone, r.Anchor.Unix(), r.NextFire.Unix(),
		string(r.Repeat.Kind), recurrence.FormatWeekdays(r.Repeat.Weekdays), r.Repeat.Interval, r.Created.Unix(),
	)
	if err != nil {
		return r, fmt.Errorf("insert reminder: %w", err)
	}
	r.ID, err = result.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return r, err
	}

	r.Active = true
	schedule(r)
	return r, nil
}

// Get returns a reminder owned by userID.
func Get(userID string, id int64) (Reminder, error) {
	r, err := scan(database.QueryRow("SELECT "+columns+" FROM reminders WHERE id = ? AND user_id = ?", id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Reminder{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return r, err
}

// List returns the active reminders of userID, soonest first.
func List(userID string) ([]Reminder, error) {
	return query("WHERE user_id = ? AND active = 1 ORDER BY paused ASC, next_fire ASC", userID)
}

// Delete cancels and deactivates a reminder owned by userID.
func Delete(userID string, id int64) error {
	res, err := database.Exec("UPDATE reminders SET active = 0 WHERE id = ? AND user_id = ? AND active = 1", id, userID)
	if err != nil {
		return fmt.Errorf("reminder: delete %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	unschedule(id)
	return nil
}

// Pause stops a reminder from firing until it is resumed.
func Pause(userID string, id int64) error {
	res, err := database.Exec("UPDATE reminders SET paused = 1 WHERE id = ? AND user_id = ? AND active = 1", id, userID)
	if err != nil {
		return fmt.Errorf("reminder: pause %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	unschedule(id)
	return nil
}

// Resume reactivates a paused reminder. Repeating reminders skip the
// occurrences missed while paused; a one-time reminder that came due fires
// right away.
func Resume(userID string, id int64) (Reminder, error) {
	r, err := Get(userID, id)
	if err != nil {
		return r, err
	}
	if !r.Active {
		return r, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if r.Repeat.Repeats() && !r.NextFire.After(now()) {
		next, _, err := recurrence.NextAfter(r.NextFire, now(), r.Repeat)
		if err != nil {
			return r, err
		}
		r.NextFire = next.In(r.NextFire.Location())
	}
	if _, err := database.Exec("UPDATE reminders SET paused = 0, next_fire = ? WHERE id = ?", r.NextFire.Unix(), id); err != nil {
		return r, fmt.Errorf("reminder: resume %d: %w", id, err)
	}
	r.Paused = false
	schedule(r)
	return r, nil
}

// Due returns active, unpaused reminders whose fire time has passed.
func Due() ([]Reminder, error) {
	return query("WHERE active = 1 AND paused = 0 AND next_fire <= ? ORDER BY next_fire ASC", now().Unix())
}

// TotalActive returns the count of in-memory scheduled timers.
func TotalActive() int {
	mu.Lock()
	defer mu.Unlock()
	return len(timers)
}

// Stop cancels every pending timer.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	for id, t := range timers {
		t.Stop()
		delete(timers, id)
	}
}
