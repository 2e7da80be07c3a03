package skills

import (
	"strings"

	"github.com/yoockh/skillbridge/internal/models"
)

const (
	baseConfidence   = 20
	githubConfidence = 45
	resumeConfidence = 30
	maxConfidence    = 100
)

// MergeSkills combines both sources into one ordered list, GitHub names first.
// Names differing only in case or spacing stay separate entries.
func MergeSkills(github, resume []string) []models.Skill {
	inGitHub := toSet(github)
	inResume := toSet(resume)

	out := []models.Skill{}
	for _, name := range dedupe(github, resume) {
		confidence := baseConfidence
		var sources []string
		if _, ok := inGitHub[name]; ok {
			confidence += githubConfidence
			sources = append(sources, models.SourceGitHub)
		}
		if _, ok := inResume[name]; ok {
			confidence += resumeConfidence
			sources = append(sources, models.SourceResume)
		}
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		out = append(out, models.Skill{
			Name:       name,
			Confidence: confidence,
			Source:     strings.Join(sources, "+"),
		})
	}
	return out
}

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Names returns the skill names in order.
func Names(list []models.Skill) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Name
	}
	return out
}
