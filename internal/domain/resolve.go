package domain

// Death records one casualty from a night resolution or a vote
type Death struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// ResolveNight applies the current night's recorded actions and returns the
// deaths in the order the kills were recorded.
//
// Resolution runs in two passes. First every Heal and Protect target joins
// the protected set, regardless of the action's own outcome. Then every Kill
// against an unprotected living target marks it dead. There is no cap on the
// number of kills per night; distinct unprotected targets all die.
func (g *Game) ResolveNight() []Death {
	actions := g.ActionsForNight(g.NightCount)

	protected := make(map[string]bool)
	for _, a := range actions {
		if a.Kind == ActionHeal || a.Kind == ActionProtect {
			protected[a.TargetID] = true
		}
	}

	deaths := make([]Death, 0)
	for _, a := range actions {
		if a.Kind != ActionKill || protected[a.TargetID] {
			continue
		}

		target, err := g.GetPlayer(a.TargetID)
		if err != nil || !target.IsAlive {
			continue
		}

		target.IsAlive = false
		deaths = append(deaths, Death{PlayerID: target.ID, Name: target.Name})
	}

	return deaths
}
