package combat

// Engine resolves single engagements. It holds no state besides its rules
// and randomness, so one Engine can serve any number of campaigns.
type Engine struct {
	Rules  *Rules
	Source Source
}

// NewEngine returns an engine on the given rules. A nil rules table means
// the built-in one, a nil source means CryptoSource.
func NewEngine(rules *Rules, src Source) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	if src == nil {
		src = CryptoSource{}
	}
	return &Engine{Rules: rules, Source: src}
}

// VictoryMargin is how much higher a final score must be for its side to
// gain experience.
const VictoryMargin = 1

// Resolve runs one engagement between two normalized sides.
func (e *Engine) Resolve(a, b SideInput) Result {
	sides := [2]SideInput{a, b}
	adv := Advantage(a.People, b.People)

	var res Result
	for p := First; p <= Second; p++ {
		res.Scores[p] = Score(e.Source, sides[p], adv[p])
		res.Losses[p] = Loss{
			PeopleBefore: sides[p].People,
			PeopleAfter:  sides[p].People,
			DefenseMod:   1,
			AttackMod:    1,
		}
	}
	res.Doublet = res.Scores[First].Roll == res.Scores[Second].Roll

	if a.People > 0 || b.People > 0 {
		for p := First; p <= Second; p++ {
			q := p.Other()
			res.Losses[p] = e.Rules.Losses(e.Source, sides[p], sides[q], res.Scores[q].Final)
		}
		diff := res.Scores[First].Final - res.Scores[Second].Final
		switch {
		case diff >= VictoryMargin:
			res.Gained[First] = true
		case -diff >= VictoryMargin:
			res.Gained[Second] = true
		}
	}

	res.Tactical = e.Rules.Classify(a, b, res.Scores)
	return res
}
