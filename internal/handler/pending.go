package handler

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"remindpro/internal/lang"
	"remindpro/internal/planner"
	"remindpro/internal/reminder"
	"remindpro/internal/user"
)

const pendingTTL = 15 * time.Minute

var (
	plans *planner.Planner

	// Parsed requests waiting for the confirm button, by token.
	pending = expirable.NewLRU[string, pendingReminder](1000, nil, pendingTTL)
	seq     atomic.Uint64
	prefix  = strconv.FormatInt(time.Now().Unix(), 36)
)

type pendingReminder struct {
	Plan      planner.Plan
	UserID    string
	ChannelID string
	GuildID   string
	Images    []reminder.Image
}

// Init wires the planner used by every handler.
func Init(p *planner.Planner) {
	plans = p
}

// stash stores p and returns its token. Tokens never contain "-".
func stash(p pendingReminder) string {
	token := prefix + "x" + strconv.FormatUint(seq.Add(1), 36)
	pending.Add(token, p)
	return token
}

// take removes and returns the pending reminder for token. Of concurrent
// callers only the one whose Remove evicted the entry gets it.
func take(token string) (pendingReminder, bool) {
	p, ok := pending.Peek(token)
	if !ok || !pending.Remove(token) {
		return pendingReminder{}, false
	}
	return p, true
}

// prepare plans a request for u. An empty when means the time is inside
// text.
func prepare(u user.User, parseLang lang.Language, text, when string) (planner.Plan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var (
		p   planner.Plan
		err error
	)
	if when == "" {
		p, err = plans.Plan(ctx, text, parseLang, u.Zone, time.Time{})
	} else {
		p, err = plans.PlanParts(ctx, text, when, parseLang, u.Zone, time.Time{})
	}
	log.Printf("handler: plan for %s: tag=%s assisted=%v err=%v", u.ID, logTag(p, err), p.Assisted, err)
	return p, err
}

// commit stores a confirmed request.
func commit(p pendingReminder) (reminder.Reminder, error) {
	return reminder.Add(reminder.Reminder{
		UserID:    p.UserID,
		ChannelID: p.ChannelID,
		GuildID:   p.GuildID,
		Text:      p.Plan.Text,
		Images:    p.Images,
		Zone:      p.Plan.Zone,
		Anchor:    p.Plan.Anchor,
		Repeat:    p.Plan.Repeat,
	})
}
