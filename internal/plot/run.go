package plot

// Run executes the operations in order against the initial snapshot,
// threading the state through and appending every event to one ordered
// log. The first failing operation stops the run; the state from just
// before it and the events gathered so far come back along with the
// error, so a caller can see exactly how far the plot got.
func Run(initial State, ops []Op) (State, []Event, error) {
	state := initial
	var log []Event
	for _, op := range ops {
		next, ev, err := Apply(op, state)
		if err != nil {
			return state, log, err
		}
		state = next
		log = append(log, ev)
	}
	return state, log, nil
}
