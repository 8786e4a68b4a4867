package phrasal

// stampFrequencies writes the total occurrence count onto every recorded
// buffer index of a compound lemma that appears more than once in the
// stream. Lemmas occurring exactly once stay unstamped.
func stampFrequencies(tokens []Token, occurrences map[string][]int) {
	for _, indices := range occurrences {
		if len(indices) < 2 {
			continue
		}
		for _, i := range indices {
			tokens[i].Frequency = len(indices)
		}
	}
}
