package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"wargame/internal/campaign"
	"wargame/internal/report"
)

func (s *Server) handleCreateBattle(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		if err := m.CreateBattle(req.Name); err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "current_battle", m.Journal().Current())
	})
}

func (s *Server) handleSelectBattle(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	s.withCampaign(w, r, func(m *campaign.Model) {
		if err := m.SelectBattle(req.Name); err != nil {
			fail(w, r, err)
			return
		}
		stats, _ := m.Journal().Stats(req.Name)
		ok(w, "current_battle", req.Name, "stats", stats)
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var (
		b   report.Battle
		err error
	)
	s.withCampaign(w, r, func(m *campaign.Model) {
		b, err = report.FromJournal(m.Journal(), r.PathValue("name"), time.Now())
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	var (
		data  []byte
		ext   string
		ctype string
	)
	if strings.HasSuffix(r.URL.Path, ".xlsx") {
		data, err = report.XLSX(b)
		ext, ctype = "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	} else {
		data, err = report.PDF(b)
		ext, ctype = "pdf", "application/pdf"
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(b.Name, ext)))
	_, _ = w.Write(data)
}

// handleFile saves or loads the battles or roster file in the data
// directory.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	kind, op := r.PathValue("kind"), r.PathValue("op")
	s.withCampaign(w, r, func(m *campaign.Model) {
		var fn func() error
		switch kind + "/" + op {
		case "battles/save":
			fn = m.SaveBattles
		case "battles/load":
			fn = m.LoadBattles
		case "roster/save":
			fn = m.SaveRoster
		case "roster/load":
			fn = m.LoadRoster
		default:
			http.NotFound(w, r)
			return
		}
		if err := fn(); err != nil {
			fail(w, r, err)
			return
		}
		ok(w, "state", m.Snapshot())
	})
}
