package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ResumeUpload is one row of the resume upload history kept in Postgres.
type ResumeUpload struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;type:text;index" json:"user_id"`
	FileName string `gorm:"column:file_name;type:text" json:"file_name"`
	FileURL  string `gorm:"column:file_url;type:text" json:"file_url"`

	FileSize int64  `gorm:"column:file_size;type:bigint" json:"file_size"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mime_type"`

	SkillNames pq.StringArray `gorm:"column:skill_names;type:text[]" json:"skill_names"`
	Skills     datatypes.JSON `gorm:"column:skills;type:jsonb" json:"skills"`
	Cached     bool           `gorm:"column:cached;not null;default:false" json:"cached"`

	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz;index" json:"uploaded_at"`
}

func (ResumeUpload) TableName() string { return "resume_uploads" }
