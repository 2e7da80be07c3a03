package services

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/yoockh/skillbridge/internal/events"
	"github.com/yoockh/skillbridge/internal/models"
	"github.com/yoockh/skillbridge/internal/storage"
	"github.com/yoockh/skillbridge/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUsers struct {
	mu        sync.Mutex
	byID      map[string]*models.User
	listCalls int
	getErr    error
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{byID: map[string]*models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.byID[u.ID.Hex()] = u
	}
	return m
}

func (m *memUsers) public(u *models.User) *models.User {
	cp := *u
	cp.Password = ""
	return &cp
}

func (m *memUsers) Create(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	m.byID[u.ID.Hex()] = &cp
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return m.public(u), nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *memUsers) UpdateGithubUsername(ctx context.Context, id, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	u.GithubUsername = &username
	return m.public(u), nil
}

func (m *memUsers) SaveResume(ctx context.Context, id string, resume models.Resume, skills []models.Skill) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	u.Resume = resume
	u.ParsedSkills = skills
	return m.public(u), nil
}

func (m *memUsers) ListProfiles(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	out := []models.User{}
	for _, u := range m.byID {
		out = append(out, *m.public(u))
	}
	return out, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(fileName string, data []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.text != "" {
		return f.text, nil
	}
	return string(data), nil
}

type fakeDeriver struct {
	skills []models.Skill
	calls  int
	github string
	text   string
}

func (f *fakeDeriver) Derive(ctx context.Context, githubUsername, resumeText string) []models.Skill {
	f.calls++
	f.github = githubUsername
	f.text = resumeText
	return f.skills
}

type memUploads struct {
	rows []models.ResumeUpload
}

func (m *memUploads) Insert(ctx context.Context, u *models.ResumeUpload) error {
	m.rows = append(m.rows, *u)
	return nil
}

func (m *memUploads) ListByUser(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error) {
	out := []models.ResumeUpload{}
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type recordingPublisher struct {
	events []events.SkillsUpdated
}

func (p *recordingPublisher) Publish(ctx context.Context, ev events.SkillsUpdated) error {
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// fixedStore always returns the same URL, so a re-upload looks like the same file.
type fixedStore struct {
	url  string
	data map[string][]byte
}

func (s *fixedStore) Save(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.data == nil {
		s.data = map[string][]byte{}
	}
	s.data[objectName] = b
	return s.url, nil
}

func (s *fixedStore) Open(ctx context.Context, objectName string) (io.ReadCloser, error) {
	b, ok := s.data[objectName]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
