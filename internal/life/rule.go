package life

// NextState applies the standard B3/S23 transition rule: a live cell survives
// with 2 or 3 live neighbors, a dead cell is born with exactly 3, everything
// else dies or stays dead.
func NextState(current State, aliveNeighbors int) State {
	if current == Alive {
		if aliveNeighbors == 2 || aliveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if aliveNeighbors == 3 {
		return Alive
	}
	return Dead
}
