package parser

// maxSuggestDistance is the largest edit distance for which
// an unknown flag gets a spelling suggestion.
const maxSuggestDistance = 2

// levenshtein returns the edit distance between two words.
func levenshtein(src, tgt string) int {
	source, target := []rune(src), []rune(tgt)

	prev := make([]int, len(target)+1)
	curr := make([]int, len(target)+1)

	for j := range prev {
		prev[j] = j
	}

	for i, sr := range source {
		curr[0] = i + 1

		for j, tr := range target {
			cost := 1
			if sr == tr {
				cost = 0
			}

			curr[j+1] = min(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(target)]
}

// closestChoice returns the choice closest to word, and its distance.
func closestChoice(word string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	closest, minDist := "", -1

	for _, choice := range choices {
		if dist := levenshtein(word, choice); minDist < 0 || dist < minDist {
			closest, minDist = choice, dist
		}
	}

	return closest, minDist
}
