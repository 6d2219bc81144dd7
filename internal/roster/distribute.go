package roster

import "fmt"

// Shares splits loss across n units: everyone takes loss/n and the first
// loss%n units take one more. The shares sum to loss exactly.
func Shares(loss, n int) []int {
	if n <= 0 {
		return nil
	}
	if loss < 0 {
		loss = 0
	}
	base, rem := loss/n, loss%n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// Delta is what one engagement did to one unit.
type Delta struct {
	UnitID       string `json:"unit_id"`
	Name         string `json:"name"`
	Share        int    `json:"share"`
	PeopleBefore int    `json:"people_before"`
	PeopleAfter  int    `json:"people_after"`
	Victory      bool   `json:"victory"`
}

// Engagement is the per-side summary written to each participating unit.
type Engagement struct {
	Record  BattleRecord
	Victory bool
}

// ApplyLosses spreads a side's aggregate loss over its participating units
// in list order, decrements their people (never below 0), counts a victory
// when the side won, and appends the engagement to each unit's history.
func (r *Roster) ApplyLosses(ids []string, loss int, e Engagement) ([]Delta, error) {
	for _, id := range ids {
		if _, ok := r.units[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, id)
		}
	}
	shares := Shares(loss, len(ids))
	deltas := make([]Delta, 0, len(ids))
	for i, id := range ids {
		u := r.units[id]
		d := Delta{
			UnitID:       id,
			Name:         r.DisplayName(id),
			Share:        shares[i],
			PeopleBefore: u.People,
			Victory:      e.Victory,
		}
		u.People = max(0, u.People-shares[i])
		if e.Victory {
			u.Victories++
		}
		d.PeopleAfter = u.People

		rec := e.Record
		rec.PeopleBefore = d.PeopleBefore
		rec.PeopleAfter = d.PeopleAfter
		rec.Loss = d.PeopleBefore - d.PeopleAfter
		rec.Victory = e.Victory
		rec.Opponents = append([]string(nil), e.Record.Opponents...)
		u.History = append(u.History, rec)

		deltas = append(deltas, d)
	}
	return deltas, nil
}
