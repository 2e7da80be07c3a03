package skills

import "strings"

// Vocabulary is the fixed keyword list used when the AI service cannot be reached.
var Vocabulary = []string{
	"JavaScript", "React", "Node.js", "Python", "Java", "Docker",
	"C++", "C#", "SQL", "MongoDB", "Express", "TypeScript", "AWS",
	"HTML", "CSS", "GraphQL", "PostgreSQL", "MySQL", "Kubernetes",
	"Redis", "Angular", "Vue", "Tailwind", "Bootstrap", "Jenkins",
	"Git", "Linux", "Azure", "GCP", "Spring", "Django", "Flask",
}

// KeywordSkills returns every vocabulary entry that occurs in text, case-insensitively,
// in vocabulary order. Matching is plain substring, so "JavaScript" also yields "Java".
func KeywordSkills(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, kw := range Vocabulary {
		if strings.Contains(lower, strings.ToLower(kw)) {
			out = append(out, kw)
		}
	}
	return out
}
