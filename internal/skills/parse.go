package skills

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Stage tells which parser stage produced a SkillList.
type Stage string

const (
	StageStructured Stage = "structured"
	StageDelimited  Stage = "delimited"
)

type SkillList struct {
	Names []string
	Stage Stage
}

var (
	codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	listSep   = regexp.MustCompile(`[\n,]+`)

	errNotJSON = errors.New("not json")
)

// ErrNotSkillList is returned for answers that are valid JSON but not an array of strings.
// Callers treat it like a failed AI call and use their fallback.
var ErrNotSkillList = errors.New("skills: answer is JSON but not a list of strings")

// ParseSkillList reads an AI answer. The structured stage expects a JSON array of strings,
// optionally wrapped in a Markdown code fence. Text that is not JSON at all is split on
// newlines and commas. Any other JSON value yields ErrNotSkillList.
func ParseSkillList(raw string) (SkillList, error) {
	raw = strings.TrimSpace(raw)

	names, err := parseStructured(raw)
	switch {
	case err == nil:
		return SkillList{Names: names, Stage: StageStructured}, nil
	case errors.Is(err, ErrNotSkillList):
		return SkillList{}, err
	}

	return SkillList{Names: parseDelimited(raw), Stage: StageDelimited}, nil
}

// parseStructured returns errNotJSON when the delimited stage should take over.
func parseStructured(raw string) ([]string, error) {
	if m := codeFence.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}
	if !json.Valid([]byte(raw)) {
		return nil, errNotJSON
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil || names == nil {
		return nil, ErrNotSkillList
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

func parseDelimited(raw string) []string {
	out := []string{}
	for _, part := range listSep.Split(raw, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each name; comparison is case-sensitive.
func dedupe(names ...[]string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, list := range names {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
