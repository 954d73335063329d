package domain

// RunWeight is the score credited for every window of Length cells that a
// single disc fills completely.
type RunWeight struct {
	Length int
	Weight int
}

var RunWeights = [...]RunWeight{
	{Length: 2, Weight: 10},
	{Length: 3, Weight: 100},
	{Length: 4, Weight: 10000},
}

// Evaluate scores the position from the computer's side: positive favours the
// computer, negative the player. It does not modify the board.
func (b *Board) Evaluate() int {
	return b.patternScore(b.computerDisc) - b.patternScore(b.playerDisc)
}

func (b *Board) patternScore(disc Disc) int {
	score := 0
	for _, rw := range RunWeights {
		score += b.countWindows(disc, rw.Length) * rw.Weight
	}
	return score
}
