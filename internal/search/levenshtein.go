package search

// maxTokenLength bounds the quadratic distance table. Tokens beyond it are
// truncated before comparison; natural-language tokens never come close.
const maxTokenLength = 64

// Distance computes the Levenshtein edit distance between a and b with unit
// insertion, deletion, and substitution costs. Inputs are compared byte-wise;
// the engine only ever passes normalized ASCII tokens.
func Distance(a, b string) int {
	a, b = clampToken(a), clampToken(b)
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	dp := make([][]int, len(b)+1)
	for i := range dp {
		dp[i] = make([]int, len(a)+1)
	}
	for j := 0; j <= len(a); j++ {
		dp[0][j] = j
	}
	for i := 1; i <= len(b); i++ {
		dp[i][0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + min(dp[i-1][j-1], dp[i][j-1], dp[i-1][j])
			}
		}
	}
	return dp[len(b)][len(a)]
}

func clampToken(s string) string {
	if len(s) > maxTokenLength {
		return s[:maxTokenLength]
	}
	return s
}
