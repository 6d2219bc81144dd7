package web

import (
	"net/http"

	"wargame/internal/campaign"
	"wargame/internal/roster"
)

func (s *Server) handleCreateUnit(w http.ResponseWriter, r *http.Request) {
	var spec roster.UnitSpec
	if err := decode(r, &spec); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		u, err := m.CreateUnit(spec)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "unit", u)
	})
}

// handleUpdateUnit applies a partial edit: fields missing from the body
// keep their current values.
func (s *Server) handleUpdateUnit(w http.ResponseWriter, r *http.Request) {
	s.withCampaign(w, r, func(m *campaign.Model) {
		id := r.PathValue("id")
		var spec roster.UnitSpec
		if cur, found := m.Roster().Unit(id); found {
			spec = cur.Spec()
		}
		if err := decode(r, &spec); err != nil {
			fail(w, r, err)
			return
		}
		u, err := m.UpdateUnit(id, spec)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "unit", u)
	})
}

func (s *Server) handleDeleteUnit(w http.ResponseWriter, r *http.Request) {
	s.withCampaign(w, r, func(m *campaign.Model) {
		if err := m.DeleteUnit(r.PathValue("id")); err != nil {
			fail(w, r, err)
			return
		}
		ok(w)
	})
}

func (s *Server) handleReinforce(w http.ResponseWriter, r *http.Request) {
	var req struct {
		People int `json:"people"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		u, err := m.Reinforce(r.PathValue("id"), req.People)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "unit", u)
	})
}

// handleNextNumber suggests a number for ?side=own|enemy&battalion_id=.
func (s *Server) handleNextNumber(w http.ResponseWriter, r *http.Request) {
	side := roster.Side(r.URL.Query().Get("side"))
	if !side.Valid() {
		fail(w, r, roster.ErrInvalidUnit)
		return
	}
	var bid *string
	if v := r.URL.Query().Get("battalion_id"); v != "" {
		bid = &v
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		ok(w, "number", m.NextNumber(side, bid))
	})
}

type nameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateBattalion(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		b, err := m.CreateBattalion(req.Name)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "battalion", b)
	})
}

func (s *Server) handleRenameBattalion(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		b, err := m.RenameBattalion(r.PathValue("id"), req.Name)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "battalion", b)
	})
}
