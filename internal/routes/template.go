package routes

import (
	"regexp"
	"time"

	"github.com/itchyny/timefmt-go"
)

// variablePattern matches ${var} patterns.
var variablePattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Template is a string that supports template expansion.
// It can contain ${reportID}-style variables and strftime tokens like %Y, %m, %d.
type Template string

// ExpandWithParams replaces the ${var} placeholders known to Params.
func (t Template) ExpandWithParams(p Params) Template {
	return replaceVariables(t, p.vars())
}

// ExpandWithTime replaces strftime tokens using the given time.
func (t Template) ExpandWithTime(at time.Time) Template {
	return Template(timefmt.Format(at, string(t)))
}

func (t Template) String() string {
	return string(t)
}

func replaceVariables(template Template, vars map[string]string) Template {
	result := variablePattern.ReplaceAllStringFunc(string(template), func(match string) string {
		// Extract variable name from ${name}
		varName := match[2 : len(match)-1]
		if val, ok := vars[varName]; ok {
			return val
		}
		return match // leave unchanged if not found
	})
	return Template(result)
}
