package neopolitan

// StateMarker is written by Serialize, the scanner carries no state across edits yet
const StateMarker byte = 1

// Serialize writes scanner state into buffer and returns number of bytes written
func (s *Scanner) Serialize(buffer []byte) int {
	if len(buffer) == 0 {
		return 0
	}
	buffer[0] = StateMarker
	return 1
}

// Deserialize restores scanner state, there is nothing to restore
func (s *Scanner) Deserialize(buffer []byte) {}
