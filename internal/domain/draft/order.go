package draft

// Order assigns one participant to each pick slot. Rounds have one slot per
// participant; SNAKE reverses every odd round, LINEAR repeats the first. The
// last round is truncated rather than padded.
func Order(participantIDs []string, totalPicks int, style Style) []string {
	n := len(participantIDs)
	if n == 0 || totalPicks <= 0 {
		return []string{}
	}

	out := make([]string, totalPicks)
	for slot := 0; slot < totalPicks; slot++ {
		round, pos := slot/n, slot%n
		if style == StyleSnake && round%2 == 1 {
			pos = n - 1 - pos
		}
		out[slot] = participantIDs[pos]
	}
	return out
}
