package skills

import (
	"strings"

	"github.com/yoockh/skillbridge/internal/models"
)

// MatchProfiles keeps the users owning at least one skill whose name appears in project,
// with ParsedSkills narrowed to those skills. Input order is preserved.
func MatchProfiles(users []models.User, project string) []models.User {
	needle := strings.ToLower(project)

	out := []models.User{}
	for _, u := range users {
		matched := []models.Skill{}
		for _, s := range u.ParsedSkills {
			if strings.Contains(needle, strings.ToLower(s.Name)) {
				matched = append(matched, s)
			}
		}
		if len(matched) == 0 {
			continue
		}
		u.ParsedSkills = matched
		out = append(out, u)
	}
	return out
}
