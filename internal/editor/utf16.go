package editor

import "unicode/utf16"

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// byteOffset returns the byte offset within line of the UTF-16 character
// offset char, and the character offset actually reached. Offsets past the
// end of line clamp to its length; an offset inside a surrogate pair rounds
// down to the start of that pair.
func byteOffset(line string, char int) (int, int) {
	if char <= 0 {
		return 0, 0
	}
	units := 0
	for i, r := range line {
		n := utf16.RuneLen(r)
		if units+n > char {
			return i, units
		}
		units += n
	}
	return len(line), units
}
