package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleEmployee  UserRole = "employee"
	RoleRecruiter UserRole = "recruiter"
)

func (r UserRole) Valid() bool {
	return r == RoleEmployee || r == RoleRecruiter
}

// User is the account + profile document stored in the "users" collection.
// JSON names follow the public API contract.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Role           UserRole           `bson:"role" json:"role"`
	GithubUsername *string            `bson:"githubUsername" json:"githubUsername"`
	Resume         Resume             `bson:"resume" json:"resume"`
	ParsedSkills   []Skill            `bson:"parsedSkills" json:"parsedSkills"`
	Experience     *string            `bson:"experience" json:"experience"`
	// ConfidenceScore is reserved for an overall profile score; nothing computes it yet.
	ConfidenceScore *float64  `bson:"confidenceScore" json:"confidenceScore"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

type Resume struct {
	FileURL    *string `bson:"fileUrl" json:"fileUrl"`
	ParsedText *string `bson:"parsedText" json:"parsedText"`
}

// Skill is one derived skill entry. Confidence is a heuristic in [0,100].
type Skill struct {
	Name       string `bson:"name" json:"name"`
	Confidence int    `bson:"confidence" json:"confidence"`
	Source     string `bson:"source" json:"source"`
}

// Skill source labels.
const (
	SourceGitHub = "GitHub"
	SourceResume = "Resume"
)

// NormalizeEmail is applied on every write and lookup so email uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Summary is the reduced user view returned on login.
type Summary struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID.Hex(), Name: u.Name, Email: u.Email, Role: u.Role}
}

// ResumeFileURL returns the stored resume URL, "" when none.
func (u *User) ResumeFileURL() string {
	if u == nil || u.Resume.FileURL == nil {
		return ""
	}
	return *u.Resume.FileURL
}
