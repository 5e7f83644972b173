package palette

import "strings"

// Similar returns keys in the palette that look like name. If several keys
// contain name they're all returned, otherwise keys within a levenshtein
// distance cutoff of name are.
func (p Palette) Similar(name string) []string {
	ldCutoff := len(name) / 3
	if 2 > ldCutoff {
		ldCutoff = 2
	}

	containing := []string{}
	lowDistance := []string{}
	for _, key := range p.Keys() {
		if key == name {
			continue
		}
		if strings.Contains(strings.ToLower(key), strings.ToLower(name)) {
			containing = append(containing, key)
		} else if len(key) > ldCutoff && ld(name, key, true) <= ldCutoff {
			lowDistance = append(lowDistance, key)
		}
	}

	if len(containing) < 3 {
		return append(containing, lowDistance...)
	}
	return containing
}

// ld compares two strings and returns the levenshtein distance between them.
// This was copied verbatim from https://github.com/spf13/cobra
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
