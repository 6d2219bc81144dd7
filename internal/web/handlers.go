// Package web serves a campaign per browser session as a JSON API, plus a
// websocket feed of resolved engagements.
package web

import (
	"context"
	"net/http"
	"sync"

	"wargame/internal/campaign"
	"wargame/internal/combat"
	"wargame/internal/session"
)

// Campaign is one session's model. The mutex serializes commands since
// campaign.Model is not safe for concurrent use.
type Campaign struct {
	mu    sync.Mutex
	model *campaign.Model
}

// Server hands each browser session its own campaign. Source is shared by
// every session and must be safe for concurrent use; nil means crypto/rand.
type Server struct {
	Rules   *combat.Rules
	Source  combat.Source
	DataDir string
	Store   session.Store[*Campaign]
	Feed    *Feed
}

const cookieName = "wargame_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/engage", s.handleEngage)

	mux.HandleFunc("POST /api/units", s.handleCreateUnit)
	mux.HandleFunc("GET /api/units/next-number", s.handleNextNumber)
	mux.HandleFunc("PATCH /api/units/{id}", s.handleUpdateUnit)
	mux.HandleFunc("DELETE /api/units/{id}", s.handleDeleteUnit)
	mux.HandleFunc("POST /api/units/{id}/reinforce", s.handleReinforce)
	mux.HandleFunc("POST /api/battalions", s.handleCreateBattalion)
	mux.HandleFunc("PATCH /api/battalions/{id}", s.handleRenameBattalion)

	mux.HandleFunc("POST /api/participants", s.handleAddParticipant)
	mux.HandleFunc("DELETE /api/participants", s.handleResetParticipants)
	mux.HandleFunc("POST /api/select-unit", s.handleSelectUnit)

	mux.HandleFunc("POST /api/battles", s.handleCreateBattle)
	mux.HandleFunc("PUT /api/battles/current", s.handleSelectBattle)
	mux.HandleFunc("GET /api/battles/{name}/report.pdf", s.handleReport)
	mux.HandleFunc("GET /api/battles/{name}/report.xlsx", s.handleReport)

	mux.HandleFunc("POST /api/files/{kind}/{op}", s.handleFile)

	if s.Feed != nil {
		mux.HandleFunc("GET /ws", s.handleWS)
	}
	return mux
}

// withCampaign runs fn on the session's campaign under its lock.
func (s *Server) withCampaign(w http.ResponseWriter, r *http.Request, fn func(m *campaign.Model)) string {
	c, id := s.getOrCreate(r.Context(), w, r)
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.model)
	return id
}

func (s *Server) getOrCreate(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Campaign, string) {
	id := s.sessionID(r)
	if id != "" {
		if c, ok, _ := s.Store.Get(ctx, id); ok {
			return c, id
		}
	} else {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	c := &Campaign{model: campaign.New(combat.NewEngine(s.Rules, s.Source), s.DataDir)}
	_ = s.Store.Put(ctx, id, c)
	return c, id
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
