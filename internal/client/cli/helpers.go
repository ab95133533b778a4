package cli

import (
	"fmt"
	"strconv"
)

// parseID разбирает id записи из первого аргумента команды
func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing record id. Usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q: must be an integer", args[0])
	}
	return id, nil
}

// syncState описывает запись по знаку id: плейсхолдеры еще не были на сервере
func syncState(id int64) string {
	if id <= 0 {
		return "local draft"
	}
	return "synced"
}

// truncate обрезает длинный текст для списков
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
