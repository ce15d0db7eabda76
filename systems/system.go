package systems

// System is one ordered pass of the per-tick pipeline. The engine runs
// physics first, then path following, then movement: pathing consumes the
// tick's resolved positions and writes inputs, movement turns inputs into
// forces the next physics pass integrates. The apparent cycle is a strict
// one-direction pipeline with a one-tick lag.
type System interface {
	Update(dt float64)
}
