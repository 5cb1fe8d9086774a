package shell

// Command is one tokenized input line. Name and Args are substrings of the
// parsed line; nothing is copied.
type Command struct {
	Name string
	Args [2]string
}

// Parse splits line into a command word and up to two arguments separated
// by runs of spaces, tabs or NUL bytes. Text after the third token is dropped. A blank
// line yields an empty Name.
func Parse(line string) Command {
	var toks [3]string
	rest := line
	for i := range toks {
		tok, r, ok := nextToken(rest)
		if !ok {
			break
		}
		toks[i], rest = tok, r
	}
	return Command{Name: toks[0], Args: [2]string{toks[1], toks[2]}}
}

// nextToken skips leading separators and returns the following run of
// non-separator bytes together with the unconsumed remainder.
func nextToken(s string) (tok, rest string, ok bool) {
	i := 0
	for i < len(s) && isSep(s[i]) {
		i++
	}
	if i == len(s) {
		return "", "", false
	}
	j := i
	for j < len(s) && !isSep(s[j]) {
		j++
	}
	return s[i:j], s[j:], true
}

// NUL separates so that no token can carry one into a stored name.
func isSep(c byte) bool {
	return c == ' ' || c == '\t' || c == 0
}
