package seatmask

import "strconv"

// SeatToBit parses a seat ID such as "a5" into its bit position (0-19).
// The format is one case-insensitive 'a' followed by a decimal number in
// [1, MaxSeats] with no leading zeros.  The second return value reports
// whether the ID was valid.
func SeatToBit(seatID string) (uint32, bool) {
	if len(seatID) < 2 || len(seatID) > 3 {
		return 0, false
	}
	if seatID[0] != 'a' && seatID[0] != 'A' {
		return 0, false
	}
	num := seatID[1:]
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return 0, false
		}
	}
	// "a01" and "a0" are rejected, not normalized.
	if num[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > MaxSeats {
		return 0, false
	}
	return uint32(n - 1), true
}

// BitToSeat converts a bit position (0-19) back into its seat ID, e.g.
// bit 4 -> "a5".  Positions outside the pool yield an empty string.
func BitToSeat(bit uint32) string {
	if bit >= MaxSeats {
		return ""
	}
	return "a" + strconv.Itoa(int(bit+1))
}

// IsValidSeat reports whether seatID parses under the seat codec.
func IsValidSeat(seatID string) bool {
	_, ok := SeatToBit(seatID)
	return ok
}

// BuildMask folds a list of seat IDs into a request bitmask.  Invalid IDs
// are skipped and duplicate IDs collapse onto the same bit, so callers
// that need strict validation must check each ID with IsValidSeat first.
func BuildMask(seatIDs []string) uint32 {
	var mask uint32
	for _, id := range seatIDs {
		if bit, ok := SeatToBit(id); ok {
			mask |= 1 << bit
		}
	}
	return mask
}
