package engine

// StepResult is the terminal outcome of one plan item.
type StepResult struct {
	Item   string
	State  State
	Detail string
}

// Summary accumulates terminal progress messages into an ordered
// per-step result set.
type Summary struct {
	Results []StepResult
}

// Apply records msg if it is terminal.
func (s *Summary) Apply(msg ProgressMsg) {
	if !msg.State.Terminal() {
		return
	}
	s.Results = append(s.Results, StepResult{Item: msg.Item, State: msg.State, Detail: msg.Detail})
}

// Counts tallies results by rough category: done covers StateDone,
// attention covers warnings, unknowns, and skips, failed covers
// StateError.
func (s Summary) Counts() (done, attention, failed int) {
	for _, r := range s.Results {
		switch r.State {
		case StateDone:
			done++
		case StateError:
			failed++
		default:
			attention++
		}
	}
	return done, attention, failed
}
