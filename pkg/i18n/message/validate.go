package message

import "fmt"

// Issue describes one problem found while validating a translation
// against its source pattern.
type Issue struct {
	Variable string
	Reason   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Variable, i.Reason)
}

// Validate compares a translated pattern against its source and
// reports placeholder drift: variables the translation references that
// the source never defines, and source variables the translation
// drops. A nil slice means the translation is consistent.
func Validate(source, translation *Message) []Issue {
	srcVars := make(map[string]struct{})
	for _, name := range source.Variables() {
		srcVars[name] = struct{}{}
	}

	var issues []Issue
	seen := make(map[string]struct{})
	for _, name := range translation.Variables() {
		seen[name] = struct{}{}
		if _, ok := srcVars[name]; !ok {
			issues = append(issues, Issue{Variable: name, Reason: "not present in source message"})
		}
	}
	for _, name := range source.Variables() {
		if _, ok := seen[name]; !ok {
			issues = append(issues, Issue{Variable: name, Reason: "missing from translation"})
		}
	}
	return issues
}
