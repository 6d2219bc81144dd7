package campaign

import (
	"log/slog"
	"strconv"

	"wargame/internal/combat"
	"wargame/internal/journal"
	"wargame/internal/roster"
)

// EngagementResult is everything one Engage call produced.
type EngagementResult struct {
	// Inputs are the side fields as they should be shown back: unparseable
	// numbers reset to "0", locked people counts filled in.
	Inputs  [2]combat.RawSide `json:"inputs"`
	Bonuses [2]combat.Bonuses `json:"bonuses"`
	Result  combat.Result     `json:"result"`
	Deltas  [2][]roster.Delta `json:"deltas"`
	Entry   journal.Entry     `json:"entry"`
	Battle  string            `json:"battle"`
}

// Engage resolves one engagement between the two sides. A side with
// participants fights with their combined current strength and its loss is
// spread over them; the engagement is then journaled.
func (m *Model) Engage(a, b combat.RawSide) (EngagementResult, error) {
	raws := [2]combat.RawSide{a, b}
	var ids, names [2][]string
	for p := combat.First; p <= combat.Second; p++ {
		if len(m.participants[p]) == 0 {
			continue
		}
		total := 0
		for _, pt := range m.participants[p] {
			u, ok := m.roster.Unit(pt.UnitID)
			if !ok {
				return EngagementResult{}, roster.ErrUnknownUnit
			}
			total += u.People
			ids[p] = append(ids[p], u.ID)
			names[p] = append(names[p], m.roster.DisplayName(u.ID))
		}
		raws[p].People = strconv.Itoa(total)
	}

	var out EngagementResult
	var sides [2]combat.SideInput
	for p := combat.First; p <= combat.Second; p++ {
		sides[p], out.Inputs[p] = combat.ParseSide(raws[p])
		out.Bonuses[p] = combat.ExperienceBonuses(sides[p])
	}
	out.Result = m.engine.Resolve(sides[0], sides[1])
	res := out.Result
	now := m.now()
	out.Battle = m.journal.Current()

	for p := combat.First; p <= combat.Second; p++ {
		if len(ids[p]) == 0 {
			continue
		}
		q := p.Other()
		deltas, err := m.roster.ApplyLosses(ids[p], res.Losses[p].Actual, roster.Engagement{
			Record: roster.BattleRecord{
				At:         now,
				Battle:     out.Battle,
				OwnScore:   res.Scores[p].Final,
				EnemyScore: res.Scores[q].Final,
				Opponents:  names[q],
			},
			Victory: res.Gained[p],
		})
		if err != nil {
			return EngagementResult{}, err
		}
		out.Deltas[p] = deltas
		for i := range m.participants[p] {
			m.participants[p][i].People = deltas[i].PeopleAfter
		}
	}

	out.Entry = journal.Entry{
		At:            now,
		Score1:        res.Scores[0].Final,
		Score2:        res.Scores[1].Final,
		People1Before: res.Losses[0].PeopleBefore,
		People1After:  res.Losses[0].PeopleAfter,
		People2Before: res.Losses[1].PeopleBefore,
		People2After:  res.Losses[1].PeopleAfter,
		Exp1:          res.Gained[0],
		Exp2:          res.Gained[1],
		Units1:        names[0],
		Units2:        names[1],
		Attack1:       sides[0].Attacking(),
		Attack2:       sides[1].Attacking(),
		Motion1:       sides[0].InMotion,
		Motion2:       sides[1].InMotion,
	}
	if t := res.Tactical; t != nil {
		out.Entry.TacticalTier = t.Tier
		out.Entry.TacticalLabel = t.Label
	}
	m.journal.Append(out.Entry)

	slog.Debug("engagement resolved",
		"battle", out.Battle,
		"score1", out.Entry.Score1, "score2", out.Entry.Score2,
		"loss1", res.Losses[0].Actual, "loss2", res.Losses[1].Actual,
		"tier", out.Entry.TacticalTier)
	return out, nil
}
