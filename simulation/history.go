package simulation

const (
	historySize = 5
	cycleWindow = 3
)

// history keeps the hashes of recent generations for cycle detection
type history struct {
	hashes []string
}

// record adds a generation's hash and reports whether it repeats one of the
// last cycleWindow generations, i.e. the grid is static or oscillating.
func (h *history) record(hash string) (repeated bool) {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-cycleWindow; i-- {
		if h.hashes[i] == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

func (h *history) reset() {
	h.hashes = nil
}
