package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single editor operation with its rendered arguments.
// Immutable once constructed; build with New and consume with String.
type Command struct {
	name string
	args []string
}

// New builds a command from an operation name and raw arguments.
// Strings are escaped and single-quoted, numbers and booleans are
// interpolated as literals.
func New(name string, args ...interface{}) Command {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = renderArg(arg)
	}
	return Command{name: name, args: rendered}
}

// Call is shorthand for New(name, args...).String().
func Call(name string, args ...interface{}) string {
	return New(name, args...).String()
}

// Name returns the operation name.
func (c Command) Name() string {
	return c.name
}

// String renders the command as a JavaScript call expression.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('(')
	for i, arg := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg)
	}
	b.WriteString(");")
	return b.String()
}

func renderArg(arg interface{}) string {
	switch v := arg.(type) {
	case string:
		return "'" + Escape(v) + "'"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		// Unexpected types stringify through fmt; callers pass
		// strings, numbers, and booleans only.
		return "'" + Escape(fmt.Sprintf("%v", v)) + "'"
	}
}
