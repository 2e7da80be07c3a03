package skills

import "github.com/yoockh/skillbridge/internal/models"

// ReuseParsedSkills reports whether an upload of fileURL can keep the user's stored skills.
func ReuseParsedSkills(u *models.User, fileURL string) bool {
	if u == nil || fileURL == "" {
		return false
	}
	return u.ResumeFileURL() == fileURL && len(u.ParsedSkills) > 0
}
