package queries

import "sort"

// queryUsersByPrefix (query 9) lists the active users whose name starts
// with the given prefix. Both the prefix match and the ordering use the
// locale collator, names first, ids as the tiebreaker.
func (e *Engine) queryUsersByPrefix(args []string) (Result, error) {
	if len(args) < 1 || args[0] == "" {
		return nil, ErrNotFound
	}
	prefix := args[0]

	var rows UserList
	for _, user := range e.manager.Users().All() {
		if user.Inactive() || len(user.Name) < len(prefix) {
			continue
		}
		if e.collator.CompareString(user.Name[:len(prefix)], prefix) != 0 {
			continue
		}
		rows = append(rows, UserRow{ID: user.ID, Name: user.Name})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := e.collator.CompareString(rows[i].Name, rows[j].Name); c != 0 {
			return c < 0
		}
		return e.collator.CompareString(rows[i].ID, rows[j].ID) < 0
	})
	return rows, nil
}
