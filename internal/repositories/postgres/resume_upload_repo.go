package postgres

import (
	"context"

	"github.com/yoockh/skillbridge/internal/models"
	"gorm.io/gorm"
)

type ResumeUploadRepository interface {
	Insert(ctx context.Context, u *models.ResumeUpload) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error)
}

type resumeUploadRepo struct {
	db *gorm.DB
}

func NewResumeUploadRepo(db *gorm.DB) ResumeUploadRepository {
	return &resumeUploadRepo{db: db}
}

// Migrate creates or updates the resume_uploads table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.ResumeUpload{})
}

func (r *resumeUploadRepo) Insert(ctx context.Context, u *models.ResumeUpload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *resumeUploadRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error) {
	if limit <= 0 {
		limit = 20
	}

	rows := []models.ResumeUpload{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
