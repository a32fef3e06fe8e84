package component

// Timer counts simulated seconds since its last restart.
type Timer struct {
	elapsed float64
}

func (t *Timer) Advance(deltaTime float64) { t.elapsed += deltaTime }
func (t *Timer) Restart()                  { t.elapsed = 0 }
func (t *Timer) Elapsed() float64          { return t.elapsed }

// Over reports whether strictly more than threshold seconds have elapsed.
func (t *Timer) Over(threshold float64) bool {
	return t.elapsed > threshold
}
