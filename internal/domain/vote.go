package domain

// VoteLog keeps one vote per voter in first-vote order. A repeat vote
// replaces the voter's target but keeps the voter's original position.
type VoteLog struct {
	order []string
	votes map[string]string // voterID -> targetID
}

// NewVoteLog creates an empty vote log
func NewVoteLog() *VoteLog {
	return &VoteLog{
		order: make([]string, 0),
		votes: make(map[string]string),
	}
}

// Cast records a vote. The last vote per voter counts.
func (v *VoteLog) Cast(voterID, targetID string) {
	if _, ok := v.votes[voterID]; !ok {
		v.order = append(v.order, voterID)
	}
	v.votes[voterID] = targetID
}

// Len returns the number of voters who have voted
func (v *VoteLog) Len() int {
	return len(v.votes)
}

// Reset clears the log at the start of a voting phase
func (v *VoteLog) Reset() {
	v.order = v.order[:0]
	v.votes = make(map[string]string)
}

// TallyVotes counts the session's votes and eliminates the winner, if any.
// Votes for targets that are dead at tally time are discarded. The winner is
// the first target to reach the maximum count walking the log in vote order;
// that first-reached rule is the documented tie-break policy. Zero counted
// votes means no elimination and a nil return.
func (g *Game) TallyVotes() *Death {
	counts := make(map[string]int)
	best := 0
	var winnerID string

	for _, voterID := range g.Votes.order {
		targetID := g.Votes.votes[voterID]
		target, err := g.GetPlayer(targetID)
		if err != nil || !target.IsAlive {
			continue
		}

		counts[targetID]++
		if counts[targetID] > best {
			best = counts[targetID]
			winnerID = targetID
		}
	}

	if winnerID == "" {
		return nil
	}

	target, err := g.GetPlayer(winnerID)
	if err != nil {
		return nil
	}

	target.IsAlive = false
	return &Death{PlayerID: target.ID, Name: target.Name}
}
