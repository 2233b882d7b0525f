// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import "strings"

// CodeValidation is the advisory result of a static component code
// check. Warnings never block anything; errors make valid false.
type CodeValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// codePrefixes are the accepted lexical starts of custom component code.
var codePrefixes = []string{"function", "const", "export"}

// riskyCalls are flagged verbatim (case-sensitive) in component code.
var riskyCalls = []string{"eval(", "Function(", "setTimeout(", "setInterval("}

// hasValidCodePrefix checks the shallow prefix rule used at creation:
// after trimming whitespace the code must start with function, const, or
// export. This is a string heuristic, not a parser.
func hasValidCodePrefix(code string) bool {
	trimmed := strings.TrimSpace(code)
	for _, p := range codePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// ValidateCode runs the non-throwing static checker over component
// code. Empty code and the absence of any definition keyword are errors;
// a missing return/arrow and dynamic-execution or timer calls are
// warnings only.
func ValidateCode(code string) CodeValidation {
	v := CodeValidation{Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(code) == "" {
		v.Errors = append(v.Errors, "Component code is empty.")
		return v
	}

	lower := strings.ToLower(code)
	hasDefinition := false
	for _, kw := range codePrefixes {
		if strings.Contains(lower, kw) {
			hasDefinition = true
			break
		}
	}
	if !hasDefinition {
		v.Errors = append(v.Errors, "Code must define a component (function, const, or export).")
	}

	if !strings.Contains(lower, "return") && !strings.Contains(code, "=>") {
		v.Warnings = append(v.Warnings, "Code may not render anything (no return or arrow function found).")
	}

	for _, call := range riskyCalls {
		if strings.Contains(code, call) {
			v.Warnings = append(v.Warnings, "Avoid "+strings.TrimSuffix(call, "(")+" in component code.")
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}
