package phrasal

type matchState int

const (
	stateIdle matchState = iota
	stateVerbPending
)

// candidate is a closed verb+particle/preposition window over the input
// stream: the span from the verb to the closing trigger, and the indices
// that form the phrase itself.
type candidate struct {
	verb    int
	trigger int
	members []int // phrase constituents in stream order, first is the verb
}

// matcher is the verb-pending state machine driving the scan. It looks at
// most one token ahead and one token behind the current position.
type matcher struct {
	state matchState
	verb  int
}

func newMatcher() *matcher {
	return &matcher{state: stateIdle}
}

// step consumes the token at position i and reports a closed candidate, if
// any. A verb tag always re-arms the matcher, so only the most recent
// unresolved verb is tracked. Any other non-trigger token leaves a pending
// verb pending, which is what lets separable phrasal verbs close later.
func (m *matcher) step(tokens []Token, i int) (candidate, bool) {
	token := tokens[i]
	if token.isVerb() {
		m.state = stateVerbPending
		m.verb = i
		return candidate{}, false
	}
	if m.state != stateVerbPending {
		return candidate{}, false
	}
	if token.isParticle() {
		// A following preposition may still extend this into a
		// verb+particle+preposition idiom, so hold the window open.
		if i+1 < len(tokens) && tokens[i+1].isPreposition() {
			return candidate{}, false
		}
		return m.close(i, []int{m.verb, i}), true
	}
	if token.isPreposition() {
		if tokens[i-1].isParticle() {
			return m.close(i, []int{m.verb, i - 1, i}), true
		}
		return m.close(i, []int{m.verb, i}), true
	}
	return candidate{}, false
}

func (m *matcher) close(trigger int, members []int) candidate {
	m.state = stateIdle
	return candidate{verb: members[0], trigger: trigger, members: members}
}
