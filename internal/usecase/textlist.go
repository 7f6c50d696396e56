package usecase

import "strings"

// SplitTextList turns a newline-delimited textarea value into an ordered
// list, dropping blank and whitespace-only lines so empty entries never
// survive a save. Lines keep their own leading/trailing whitespace trimmed.
func SplitTextList(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// CleanList applies the same blank-entry filtering to an already-split
// list.
func CleanList(items []string) []string {
	out := []string{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
