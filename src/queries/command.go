package queries

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one parsed line of a queries file: a query id of 1 to 10, an
// optional F suffix selecting the labeled output layout, and positional
// arguments. Arguments containing spaces are double-quoted.
type Command struct {
	ID      int
	Labeled bool
	Args    []string
}

// ParseCommand parses lines such as `1 "Jéssica Tavares"` or
// `5F LIS 2021/01/01\ 00:00:00 2022/12/31\ 23:59:59` (a backslash escapes
// the space inside a datetime argument).
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("empty command line")
	}
	tokens := tokenize(line)

	head := tokens[0]
	labeled := false
	if strings.HasSuffix(head, "F") {
		labeled = true
		head = strings.TrimSuffix(head, "F")
	}
	id, err := strconv.Atoi(head)
	if err != nil || id < 1 || id > 10 {
		return Command{}, fmt.Errorf("invalid query id %q", tokens[0])
	}
	return Command{ID: id, Labeled: labeled, Args: tokens[1:]}, nil
}

// tokenize splits on spaces, keeping double-quoted runs as one token with
// the quotes stripped.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == '\\' && i+1 < len(line) && line[i+1] == ' ':
			current.WriteByte(' ')
			i++
		case c == ' ' && !inQuotes:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()
	return tokens
}
