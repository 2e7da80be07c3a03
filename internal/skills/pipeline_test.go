package skills

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/skillbridge/internal/logger"
	"github.com/yoockh/skillbridge/internal/providers/github"
	"github.com/yoockh/skillbridge/internal/providers/llm"
)

type fakeRepos struct {
	repos []github.RepoMeta
	err   error
	calls int
}

func (f *fakeRepos) ListRepos(ctx context.Context, username string) ([]github.RepoMeta, error) {
	f.calls++
	return f.repos, f.err
}

type fakeAI struct {
	answer string
	err    error
	reqs   []llm.Request
}

func (f *fakeAI) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.answer, f.err
}

func (f *fakeAI) Close() error { return nil }

type memCache struct {
	data map[string][]string
	sets int
}

func (m *memCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := m.data[key]
	if ok {
		*(dst.(*[]string)) = v
	}
	return ok, nil
}

func (m *memCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	m.sets++
	m.data[key] = val.([]string)
	return nil
}

func (m *memCache) Del(ctx context.Context, keys ...string) error { return nil }

func TestGitHubSkills_UnionOfLanguagesAndAI(t *testing.T) {
	repos := &fakeRepos{repos: []github.RepoMeta{
		{Name: "a", Language: "Go", Description: "gRPC gateway"},
		{Name: "b", Language: "Go"},
		{Name: "c", Language: "Python", Description: "ml"},
	}}
	ai := &fakeAI{answer: `["Go","gRPC","Kubernetes"]`}
	p := NewPipeline(repos, ai, nil, 0, logger.Discard())

	got := p.GitHubSkills(context.Background(), "octo")
	assert.Equal(t, []string{"Go", "Python", "gRPC", "Kubernetes"}, got)

	require.Len(t, ai.reqs, 1)
	assert.Equal(t, githubSystemPrompt, ai.reqs[0].System)
	assert.Equal(t, 150, ai.reqs[0].MaxTokens)
	assert.Zero(t, ai.reqs[0].Temperature)
	assert.Contains(t, ai.reqs[0].Prompt, "Languages: Go, Python")
}

func TestGitHubSkills_AIFailureReturnsLanguages(t *testing.T) {
	repos := &fakeRepos{repos: []github.RepoMeta{{Language: "Rust"}, {Language: "C"}}}
	p := NewPipeline(repos, &fakeAI{err: errors.New("quota")}, nil, 0, logger.Discard())

	assert.Equal(t, []string{"Rust", "C"}, p.GitHubSkills(context.Background(), "octo"))
}

func TestGitHubSkills_FetchFailureReturnsEmpty(t *testing.T) {
	p := NewPipeline(&fakeRepos{err: errors.New("404")}, &fakeAI{}, nil, 0, logger.Discard())
	assert.Equal(t, []string{}, p.GitHubSkills(context.Background(), "ghost"))
}

func TestGitHubSkills_NothingToAskSkipsAI(t *testing.T) {
	ai := &fakeAI{answer: `["X"]`}
	p := NewPipeline(&fakeRepos{repos: []github.RepoMeta{{Name: "empty"}}}, ai, nil, 0, logger.Discard())

	assert.Equal(t, []string{}, p.GitHubSkills(context.Background(), "octo"))
	assert.Empty(t, ai.reqs)
}

func TestGitHubSkills_CachedPerUsername(t *testing.T) {
	repos := &fakeRepos{repos: []github.RepoMeta{{Language: "Go"}}}
	c := &memCache{data: map[string][]string{}}
	p := NewPipeline(repos, &fakeAI{answer: `["Docker"]`}, c, time.Hour, logger.Discard())

	first := p.GitHubSkills(context.Background(), "Octo")
	second := p.GitHubSkills(context.Background(), "octo")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repos.calls)
	assert.Equal(t, 1, c.sets)
}

func TestGitHubSkills_FallbackNotCached(t *testing.T) {
	c := &memCache{data: map[string][]string{}}
	p := NewPipeline(&fakeRepos{repos: []github.RepoMeta{{Language: "Go"}}}, &fakeAI{err: errors.New("down")}, c, time.Hour, logger.Discard())

	p.GitHubSkills(context.Background(), "octo")
	assert.Zero(t, c.sets)
}

func TestResumeSkills(t *testing.T) {
	ai := &fakeAI{answer: "Go\nDocker, Go"}
	p := NewPipeline(&fakeRepos{}, ai, nil, 0, logger.Discard())

	assert.Equal(t, []string{"Go", "Docker"}, p.ResumeSkills(context.Background(), "resume"))
	require.Len(t, ai.reqs, 1)
	assert.Equal(t, resumeSystemPrompt, ai.reqs[0].System)
	assert.Equal(t, 200, ai.reqs[0].MaxTokens)
	assert.Contains(t, ai.reqs[0].Prompt, "resume")
}

func TestResumeSkills_KeywordFallback(t *testing.T) {
	p := NewPipeline(&fakeRepos{}, llm.Unavailable{}, nil, 0, logger.Discard())

	got := p.ResumeSkills(context.Background(), "Python developer, Docker, AWS")
	assert.Equal(t, []string{"Python", "Docker", "AWS"}, got)
}

func TestDerive(t *testing.T) {
	repos := &fakeRepos{repos: []github.RepoMeta{{Language: "Python"}}}
	p := NewPipeline(repos, &fakeAI{err: errors.New("down")}, nil, 0, logger.Discard())

	got := p.Derive(context.Background(), "octo", "Python and Docker")
	require.Len(t, got, 2)
	assert.Equal(t, "Python", got[0].Name)
	assert.Equal(t, 95, got[0].Confidence)
	assert.Equal(t, "GitHub+Resume", got[0].Source)
	assert.Equal(t, "Docker", got[1].Name)
	assert.Equal(t, 50, got[1].Confidence)
}

func TestDerive_NoGitHubUser(t *testing.T) {
	repos := &fakeRepos{}
	p := NewPipeline(repos, llm.Unavailable{}, nil, 0, logger.Discard())

	got := p.Derive(context.Background(), "", "SQL")
	assert.Zero(t, repos.calls)
	require.Len(t, got, 1)
	assert.Equal(t, "Resume", got[0].Source)
}

func TestResumeSkills_ObjectAnswerUsesKeywords(t *testing.T) {
	ai := &fakeAI{answer: `{"skills": ["Go", "Docker"]}`}
	p := NewPipeline(&fakeRepos{}, ai, nil, 0, logger.Discard())

	got := p.ResumeSkills(context.Background(), "Python and Redis")
	assert.Equal(t, []string{"Python", "Redis"}, got)
}

func TestGitHubSkills_ObjectAnswerUsesLanguagesUncached(t *testing.T) {
	c := &memCache{data: map[string][]string{}}
	repos := &fakeRepos{repos: []github.RepoMeta{{Language: "Rust", Description: "cli"}}}
	p := NewPipeline(repos, &fakeAI{answer: `{"skills": ["Go", "Docker"]}`}, c, time.Hour, logger.Discard())

	assert.Equal(t, []string{"Rust"}, p.GitHubSkills(context.Background(), "octo"))
	assert.Zero(t, c.sets)
}

func TestResumeSkills_EmptyJSONListIsNoSkills(t *testing.T) {
	p := NewPipeline(&fakeRepos{}, &fakeAI{answer: "[]"}, nil, 0, logger.Discard())
	assert.Equal(t, []string{}, p.ResumeSkills(context.Background(), "Python"))
}
