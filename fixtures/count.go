package fixtures

import (
	"bufio"
	"io"
	"strings"
)

// countConllu counts sentences (via "# sent_id" comments) and syntactic
// tokens (excluding MWT ranges and empty nodes), and collects the set of
// XPOS tags observed, matching verify_ud_ewt.py's count_conllu.
func countConllu(r io.Reader) (sentences, tokens int, xposTags map[string]struct{}, err error) {
	xposTags = make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if strings.HasPrefix(line, "# sent_id") {
				sentences++
			}
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) >= 5 && !strings.Contains(parts[0], "-") && !strings.Contains(parts[0], ".") {
			tokens++
			xposTags[parts[4]] = struct{}{}
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return 0, 0, nil, scanErr
	}
	return sentences, tokens, xposTags, nil
}
