package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/skillbridge/internal/document"
	"github.com/yoockh/skillbridge/internal/events"
	"github.com/yoockh/skillbridge/internal/logger"
	"github.com/yoockh/skillbridge/internal/models"
	mongorepo "github.com/yoockh/skillbridge/internal/repositories/mongo"
	pgrepo "github.com/yoockh/skillbridge/internal/repositories/postgres"
	"github.com/yoockh/skillbridge/internal/skills"
	"github.com/yoockh/skillbridge/internal/storage"
	"github.com/yoockh/skillbridge/internal/utils"
	"gorm.io/datatypes"
)

type SkillDeriver interface {
	Derive(ctx context.Context, githubUsername, resumeText string) []models.Skill
}

type ResumeFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

type ResumeResult struct {
	User *models.User
	// Cached is true when the stored skills were kept without running the pipeline.
	Cached bool
}

type EmployeeService interface {
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateGithub(ctx context.Context, userID, username string) (*models.User, error)
	UploadResume(ctx context.Context, userID string, f ResumeFile) (*ResumeResult, error)
	ResumeHistory(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error)
}

type EmployeeDeps struct {
	Users     mongorepo.UserRepository
	Uploads   pgrepo.ResumeUploadRepository // optional
	Store     storage.Store
	Extractor document.Extractor
	Skills    SkillDeriver
	Events    events.Publisher // optional
	Log       *logrus.Logger
}

type employeeService struct {
	EmployeeDeps
	now func() time.Time
}

func NewEmployeeService(d EmployeeDeps) EmployeeService {
	if d.Events == nil {
		d.Events = events.NopPublisher{}
	}
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	return &employeeService{EmployeeDeps: d, now: time.Now}
}

func (s *employeeService) Profile(ctx context.Context, userID string) (*models.User, error) {
	const op = "EmployeeService.Profile"

	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return u, nil
}

func (s *employeeService) UpdateGithub(ctx context.Context, userID, username string) (*models.User, error) {
	const op = "EmployeeService.UpdateGithub"

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Github username required", nil)
	}

	u, err := s.Users.UpdateGithubUsername(ctx, userID, username)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return u, nil
}

// UploadResume stores the file, then either keeps the user's existing skills (same file URL
// and skills present) or runs extraction and skill derivation and saves the result.
func (s *employeeService) UploadResume(ctx context.Context, userID string, f ResumeFile) (*ResumeResult, error) {
	const op = "EmployeeService.UploadResume"

	if f.Body == nil || f.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil)
	}
	if !document.AllowedExtension(f.Name) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Only .pdf, .docx and .txt resumes are supported", nil)
	}
	if f.ContentType == "" {
		f.ContentType = document.ContentType(f.Name)
	}

	objectName := storage.ObjectName(f.Name, s.now())
	fileURL, err := s.Store.Save(ctx, objectName, f.ContentType, f.Body)
	if err != nil {
		return nil, serverError(op, err)
	}

	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
	}
	if err != nil {
		return nil, serverError(op, err)
	}

	if skills.ReuseParsedSkills(u, fileURL) {
		s.afterUpload(ctx, u, f, fileURL, true)
		return &ResumeResult{User: u, Cached: true}, nil
	}

	text, err := s.readText(ctx, objectName, f.Name)
	if err != nil {
		return nil, serverError(op, err)
	}

	github := ""
	if u.GithubUsername != nil {
		github = *u.GithubUsername
	}
	parsed := s.Skills.Derive(ctx, github, text)

	updated, err := s.Users.SaveResume(ctx, userID, models.Resume{FileURL: &fileURL, ParsedText: &text}, parsed)
	if err != nil {
		return nil, serverError(op, err)
	}

	s.afterUpload(ctx, updated, f, fileURL, false)
	return &ResumeResult{User: updated, Cached: false}, nil
}

func (s *employeeService) readText(ctx context.Context, objectName, fileName string) (string, error) {
	rc, err := s.Store.Open(ctx, objectName)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return s.Extractor.Extract(fileName, data)
}

// afterUpload records history and publishes the update. Failures are logged only.
func (s *employeeService) afterUpload(ctx context.Context, u *models.User, f ResumeFile, fileURL string, cached bool) {
	entry := s.Log.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "file_url": fileURL})

	if s.Uploads != nil {
		snapshot, err := json.Marshal(u.ParsedSkills)
		if err != nil {
			snapshot = []byte("[]")
		}
		row := &models.ResumeUpload{
			ID:         uuid.NewString(),
			UserID:     u.ID.Hex(),
			FileName:   f.Name,
			FileURL:    fileURL,
			FileSize:   f.Size,
			MimeType:   f.ContentType,
			SkillNames: skills.Names(u.ParsedSkills),
			Skills:     datatypes.JSON(snapshot),
			Cached:     cached,
			UploadedAt: s.now().UTC(),
		}
		if err := s.Uploads.Insert(ctx, row); err != nil {
			entry.WithError(err).Warn("failed to record resume upload history")
		}
	}

	err := s.Events.Publish(ctx, events.SkillsUpdated{
		UserID:  u.ID.Hex(),
		FileURL: fileURL,
		Skills:  u.ParsedSkills,
		Cached:  cached,
		At:      s.now().UTC(),
	})
	if err != nil {
		entry.WithError(err).Warn("failed to publish skills update")
	}
}

func (s *employeeService) ResumeHistory(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error) {
	const op = "EmployeeService.ResumeHistory"

	if s.Uploads == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "Resume history is not enabled", nil)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.Uploads.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return rows, nil
}

// serverError exposes the cause to the client, matching the resume endpoint contract.
func serverError(op string, err error) error {
	return utils.E(utils.CodeInternal, op, "Server error: "+err.Error(), err)
}
