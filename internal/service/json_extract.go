package service

import (
	"regexp"
	"strings"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fenceStart        = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEnd          = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMJSONResponse quita BOM y fences ``` del borde de la respuesta.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractJSONCandidate busca primero un bloque ```json y si no lo hay el primer objeto balanceado.
func extractJSONCandidate(raw string) string {
	if m := fencedJSONPattern.FindStringSubmatch(raw); len(m) == 2 {
		if obj := extractFirstJSONObject(m[1]); obj != "" {
			return obj
		}
	}
	if obj := extractFirstJSONObject(cleanLLMJSONResponse(raw)); obj != "" {
		return obj
	}
	return extractFirstJSONObject(raw)
}

// extractFirstJSONObject devuelve el primer objeto {...} con llaves balanceadas,
// ignorando llaves dentro de strings. Devuelve "" si no hay uno completo.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}
