package streak

// Walk derives the trailing and maximum participation streaks from the
// chronological participation sequence of a single participant. Each element
// tells whether the participant submitted a prediction for that event.
//
// The current streak is the run ending at the most recent event of the whole
// timeline, so missing the latest event resets it to zero.
func Walk(participated []bool) (current, max int) {
	running := 0

	for _, played := range participated {
		if played {
			running++
			continue
		}
		if running > max {
			max = running
		}
		running = 0
	}

	if running > max {
		max = running
	}

	return running, max
}
