package parser

import (
	"strings"

	"mica/internal/errors"
)

// CheckSource lexes and parses every non-blank line of a program and
// collects all lexical and syntax errors. Unlike a run, which stops
// at the first failure, the check continues past bad lines so that
// tooling can report everything at once. Runtime behavior is not
// examined.
func CheckSource(source string) []*errors.Error {
	var errs []*errors.Error

	for i, raw := range strings.Split(source, "\n") {
		if _, err := ParseProgramLine(raw, i+1); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
