package repositories

import (
	"strings"

	"github.com/sbilibin2017/todo-tracker/internal/logger"
)

// logQuery writes the statement on a single line together with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
