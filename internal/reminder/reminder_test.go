package reminder

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"remindpro/internal/db"
	"remindpro/internal/lang"
	"remindpro/internal/recurrence"
)

var msk, _ = time.LoadLocation("Europe/Moscow")

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

type recorder struct {
	mu   sync.Mutex
	sent []Reminder
	err  error
}

func (r *recorder) notify(rem Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, rem)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

// setupDB opens a fresh database with the clock at Monday 2024-01-15 10:00 MSK.
func setupDB(t *testing.T) (*fakeClock, *recorder) {
	t.Helper()
	db.Open(":memory:")
	database = db.DB
	timers = map[int64]*time.Timer{}
	MaxPerUser = DefaultMaxPerUser

	clock := &fakeClock{t: time.Date(2024, 1, 15, 10, 0, 0, 0, msk)}
	SetClock(clock.Now)
	rec := &recorder{}
	notify = rec.notify

	t.Cleanup(func() {
		Stop()
		StopRecovery()
		SetClock(nil)
		notify = nil
		db.Close()
	})
	return clock, rec
}

func add(t *testing.T, userID, text string, at time.Time, spec recurrence.Spec) Reminder {
	t.Helper()
	r, err := Add(Reminder{
		UserID:    userID,
		ChannelID: "chan1",
		GuildID:   "guild1",
		Text:      text,
		Zone:      "Europe/Moscow",
		Anchor:    at,
		Repeat:    spec,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return r
}

func TestAddAndList(t *testing.T) {
	clock, _ := setupDB(t)

	fireAt := clock.Now().Add(time.Hour)
	r := add(t, "user1", "check the oven", fireAt, recurrence.Once)
	if r.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	reminders, err := List("user1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}
	got := reminders[0]
	if got.Text != "check the oven" {
		t.Errorf("text: got %q, want %q", got.Text, "check the oven")
	}
	if !got.NextFire.Equal(fireAt) || !got.Anchor.Equal(fireAt) {
		t.Errorf("times: got next=%s anchor=%s, want %s", got.NextFire, got.Anchor, fireAt)
	}
	if got.NextFire.Location().String() != "Europe/Moscow" {
		t.Errorf("location: got %s", got.NextFire.Location())
	}
	if got.Repeat.Kind != recurrence.None || !got.Active || got.Paused {
		t.Errorf("state: got %+v", got)
	}
	if TotalActive() != 1 {
		t.Errorf("expected 1 timer, got %d", TotalActive())
	}
}

func TestAddRejectsPast(t *testing.T) {
	clock, _ := setupDB(t)

	_, err := Add(Reminder{UserID: "u", ChannelID: "c", Text: "late", Zone: "UTC", Anchor: clock.Now()})
	if !errors.Is(err, ErrInPast) {
		t.Errorf("expected ErrInPast, got %v", err)
	}
}

func TestAddRejectsInvalidRepeat(t *testing.T) {
	clock, _ := setupDB(t)

	_, err := Add(Reminder{UserID: "u", ChannelID: "c", Text: "x", Zone: "UTC",
		Anchor: clock.Now().Add(time.Hour), Repeat: recurrence.Spec{Kind: recurrence.Weekly}})
	if !errors.Is(err, recurrence.ErrNoWeekdays) {
		t.Errorf("expected ErrNoWeekdays, got %v", err)
	}
}

func TestAddLimit(t *testing.T) {
	clock, _ := setupDB(t)
	MaxPerUser = 2

	add(t, "user1", "one", clock.Now().Add(time.Hour), recurrence.Once)
	add(t, "user1", "two", clock.Now().Add(2*time.Hour), recurrence.Once)
	_, err := Add(Reminder{UserID: "user1", ChannelID: "c", Text: "three", Zone: "UTC", Anchor: clock.Now().Add(3 * time.Hour)})
	if !errors.Is(err, ErrTooMany) {
		t.Fatalf("expected ErrTooMany, got %v", err)
	}

	// Other users are unaffected.
	add(t, "user2", "one", clock.Now().Add(time.Hour), recurrence.Once)
}

func TestAddWithImages(t *testing.T) {
	clock, _ := setupDB(t)

	imgs := []Image{{Filename: "photo.png", Data: "abc123"}}
	_, err := Add(Reminder{UserID: "user1", ChannelID: "c", Text: "msg", Zone: "UTC",
		Images: imgs, Anchor: clock.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	reminders, _ := List("user1")
	if len(reminders[0].Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(reminders[0].Images))
	}
	if reminders[0].Images[0].Filename != "photo.png" {
		t.Errorf("filename: got %q, want %q", reminders[0].Images[0].Filename, "photo.png")
	}
}

func TestFireOneTime(t *testing.T) {
	clock, rec := setupDB(t)

	r := add(t, "user1", "call mom", clock.Now().Add(time.Hour), recurrence.Once)

	if ok, _ := Fire(r.ID, r.NextFire); ok {
		t.Fatal("fired before it was due")
	}

	clock.Set(r.NextFire)
	if ok, _ := Fire(r.ID, r.NextFire.Add(time.Minute)); ok {
		t.Fatal("fired with a stale expected time")
	}
	ok, err := Fire(r.ID, r.NextFire)
	if err != nil || !ok {
		t.Fatalf("Fire: ok=%v err=%v", ok, err)
	}
	if ok, _ := Fire(r.ID, r.NextFire); ok {
		t.Fatal("fired twice")
	}
	if rec.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", rec.count())
	}

	got, err := Get("user1", r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Active || got.NotifiedCount != 1 {
		t.Errorf("after fire: active=%v notified=%d", got.Active, got.NotifiedCount)
	}
	if left, _ := List("user1"); len(left) != 0 {
		t.Errorf("expected fired reminder to leave the list, got %d", len(left))
	}
}

func TestFireRepeating(t *testing.T) {
	clock, rec := setupDB(t)

	first := time.Date(2024, 1, 16, 9, 0, 0, 0, msk)
	r := add(t, "user1", "standup", first, recurrence.Spec{Kind: recurrence.Daily})

	clock.Set(first)
	if ok, err := Fire(r.ID, first); !ok || err != nil {
		t.Fatalf("Fire: ok=%v err=%v", ok, err)
	}
	got, _ := Get("user1", r.ID)
	want := time.Date(2024, 1, 17, 9, 0, 0, 0, msk)
	if !got.NextFire.Equal(want) || !got.Active {
		t.Errorf("next fire: got %s active=%v, want %s", got.NextFire, got.Active, want)
	}
	if !rec.sent[0].NextFire.Equal(first) {
		t.Errorf("delivered occurrence: got %s, want %s", rec.sent[0].NextFire, first)
	}
	if TotalActive() != 1 {
		t.Errorf("expected the next occurrence to be scheduled")
	}

	// A late fire skips the occurrences that were missed.
	clock.Set(time.Date(2024, 1, 19, 12, 0, 0, 0, msk))
	if ok, _ := Fire(r.ID, want); !ok {
		t.Fatal("late fire was not applied")
	}
	got, _ = Get("user1", r.ID)
	if w := time.Date(2024, 1, 20, 9, 0, 0, 0, msk); !got.NextFire.Equal(w) {
		t.Errorf("after late fire: got %s, want %s", got.NextFire, w)
	}
	if got.NotifiedCount != 2 {
		t.Errorf("notified: got %d, want 2", got.NotifiedCount)
	}
}

func TestFireWeekly(t *testing.T) {
	clock, _ := setupDB(t)

	// Wednesday.
	wed := time.Date(2024, 1, 17, 10, 0, 0, 0, msk)
	r := add(t, "user1", "gym", wed, recurrence.Spec{Kind: recurrence.Weekly, Weekdays: []int{0, 2, 4}})

	clock.Set(wed)
	Fire(r.ID, wed)
	got, _ := Get("user1", r.ID)
	if want := time.Date(2024, 1, 19, 10, 0, 0, 0, msk); !got.NextFire.Equal(want) {
		t.Errorf("got %s, want %s", got.NextFire, want)
	}
}

func TestFireCountsDeliveryErrors(t *testing.T) {
	clock, rec := setupDB(t)
	rec.err = errors.New("channel gone")

	r := add(t, "user1", "x", clock.Now().Add(time.Minute), recurrence.Once)
	clock.Set(r.NextFire)
	if ok, _ := Fire(r.ID, r.NextFire); !ok {
		t.Fatal("expected the fire to be claimed")
	}
	got, _ := Get("user1", r.ID)
	if got.ErrorCount != 1 || got.NotifiedCount != 1 {
		t.Errorf("got errors=%d notified=%d", got.ErrorCount, got.NotifiedCount)
	}
}

func TestConcurrentFire(t *testing.T) {
	clock, rec := setupDB(t)

	r := add(t, "user1", "x", clock.Now().Add(time.Minute), recurrence.Spec{Kind: recurrence.Daily})
	clock.Set(r.NextFire)

	var wg sync.WaitGroup
	var claimed atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := Fire(r.ID, r.NextFire); ok {
				claimed.Add(1)
			}
		}()
	}
	wg.Wait()

	if claimed.Load() != 1 || rec.count() != 1 {
		t.Errorf("expected exactly one fire, got claimed=%d sent=%d", claimed.Load(), rec.count())
	}
}

func TestSweep(t *testing.T) {
	clock, rec := setupDB(t)

	add(t, "user1", "a", clock.Now().Add(time.Minute), recurrence.Once)
	add(t, "user1", "b", clock.Now().Add(2*time.Minute), recurrence.Spec{Kind: recurrence.Daily})
	add(t, "user1", "c", clock.Now().Add(time.Hour), recurrence.Once)

	clock.Set(clock.Now().Add(5 * time.Minute))
	if n := Sweep(); n != 2 {
		t.Fatalf("expected 2 recovered reminders, got %d", n)
	}
	if n := Sweep(); n != 0 {
		t.Errorf("second sweep fired %d", n)
	}
	if rec.count() != 2 {
		t.Errorf("expected 2 notifications, got %d", rec.count())
	}
}

func TestPauseResume(t *testing.T) {
	clock, _ := setupDB(t)

	first := time.Date(2024, 1, 16, 9, 0, 0, 0, msk)
	r := add(t, "user1", "pills", first, recurrence.Spec{Kind: recurrence.Daily})

	if err := Pause("user1", r.ID); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if TotalActive() != 0 {
		t.Errorf("paused reminder still has a timer")
	}

	clock.Set(time.Date(2024, 1, 18, 12, 0, 0, 0, msk))
	if ok, _ := Fire(r.ID, first); ok {
		t.Fatal("paused reminder fired")
	}
	if due, _ := Due(); len(due) != 0 {
		t.Errorf("paused reminder reported due")
	}

	resumed, err := Resume("user1", r.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if want := time.Date(2024, 1, 19, 9, 0, 0, 0, msk); !resumed.NextFire.Equal(want) {
		t.Errorf("resumed next fire: got %s, want %s", resumed.NextFire, want)
	}
	if TotalActive() != 1 {
		t.Errorf("resumed reminder has no timer")
	}

	if err := Pause("user2", r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("pause by another user: got %v", err)
	}
}

func TestDelete(t *testing.T) {
	clock, _ := setupDB(t)

	r := add(t, "user1", "test", clock.Now().Add(time.Hour), recurrence.Once)

	if err := Delete("user2", r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete by another user: got %v", err)
	}
	if err := Delete("user1", r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := Delete("user1", r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v", err)
	}
	if after, _ := List("user1"); len(after) != 0 {
		t.Errorf("expected 0 reminders after delete, got %d", len(after))
	}
	if TotalActive() != 0 {
		t.Errorf("deleted reminder still has a timer")
	}
}

func TestDeleteNonExistent(t *testing.T) {
	setupDB(t)

	if err := Delete("user1", 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadAndSchedule(t *testing.T) {
	clock, _ := setupDB(t)

	next := clock.Now().Add(time.Hour).Unix()
	for _, q := range []string{
		"INSERT INTO reminders (user_id, channel_id, text, timezone, anchor, next_fire, created) VALUES ('u', 'c', 'a', 'UTC', ?, ?, 0)",
		"INSERT INTO reminders (user_id, channel_id, text, timezone, anchor, next_fire, created, paused) VALUES ('u', 'c', 'b', 'UTC', ?, ?, 0, 1)",
		"INSERT INTO reminders (user_id, channel_id, text, timezone, anchor, next_fire, created, active) VALUES ('u', 'c', 'c', 'UTC', ?, ?, 0, 0)",
	} {
		if _, err := db.DB.Exec(q, next, next); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	loadAndSchedule()
	if TotalActive() != 1 {
		t.Errorf("expected 1 scheduled reminder, got %d", TotalActive())
	}
}

func TestStartRecovery(t *testing.T) {
	setupDB(t)

	if err := StartRecovery("not a schedule"); err == nil {
		t.Error("expected an error for a bad schedule")
	}
	if err := StartRecovery("@every 1h"); err != nil {
		t.Fatalf("StartRecovery: %v", err)
	}
	StopRecovery()
}

func TestTrigger(t *testing.T) {
	cases := []struct {
		content string
		n       int
		l       lang.Language
		ok      bool
	}{
		{"remind me tomorrow at 9 to call", len("remind me "), lang.English, true},
		{"Reminder in 2 hours", len("reminder "), lang.English, true},
		{"Напомни завтра в 10 позвонить", len("Напомни "), lang.Russian, true},
		{"  напомните мне через час", 2 + len("напомните мне "), lang.Russian, true},
		{"what time is it", 0, 0, false},
		{"remind", 0, 0, false},
	}
	for _, tc := range cases {
		n, l, ok := Trigger(tc.content)
		if ok != tc.ok || n != tc.n || (ok && l != tc.l) {
			t.Errorf("Trigger(%q) = %d, %v, %v; want %d, %v, %v", tc.content, n, l, ok, tc.n, tc.l, tc.ok)
		}
	}
}
