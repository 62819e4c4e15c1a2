package formatter

import "github.com/jbaxter/emlog/core"

// ANSI escape sequences for the colored prefix. The level name takes
// the color of its severity; the origin file:line is bright black.
const (
	colorReset  = "\x1b[0m"
	colorOrigin = "\x1b[90m"
)

// levelColors maps each level to its escape sequence. Error and
// fatal share red.
var levelColors = [...]string{
	core.TraceLevel: "\x1b[94m",
	core.DebugLevel: "\x1b[36m",
	core.InfoLevel:  "\x1b[32m",
	core.WarnLevel:  "\x1b[33m",
	core.ErrorLevel: "\x1b[31m",
	core.FatalLevel: "\x1b[31m",
}

func levelColor(level core.Level) string {
	if level >= 0 && int(level) < len(levelColors) {
		return levelColors[level]
	}
	return ""
}
