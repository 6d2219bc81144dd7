package web

import (
	"net/http"

	"wargame/internal/campaign"
	"wargame/internal/combat"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.withCampaign(w, r, func(m *campaign.Model) {
		ok(w, "state", m.Snapshot())
	})
}

type engageRequest struct {
	A combat.RawSide `json:"a"`
	B combat.RawSide `json:"b"`
}

func (s *Server) handleEngage(w http.ResponseWriter, r *http.Request) {
	var req engageRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	var (
		res campaign.EngagementResult
		err error
	)
	id := s.withCampaign(w, r, func(m *campaign.Model) {
		res, err = m.Engage(req.A, req.B)
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	if s.Feed != nil {
		s.Feed.Broadcast(id, feedMessage{Type: "engagement", Data: res})
	}
	ok(w, "engagement", res)
}

type partyRequest struct {
	Party  combat.Party `json:"party"`
	UnitID string       `json:"unit_id"`
}

func (s *Server) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		pt, err := m.AddParticipant(req.Party, req.UnitID)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "participant", pt, "people", m.People(req.Party), "locked", m.Locked(req.Party))
	})
}

func (s *Server) handleResetParticipants(w http.ResponseWriter, r *http.Request) {
	s.withCampaign(w, r, func(m *campaign.Model) {
		m.ResetParticipants()
		ok(w)
	})
}

func (s *Server) handleSelectUnit(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		sel, err := m.SelectUnit(req.Party, req.UnitID)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "selection", sel)
	})
}
