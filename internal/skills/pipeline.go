package skills

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/skillbridge/internal/cache"
	"github.com/yoockh/skillbridge/internal/models"
	"github.com/yoockh/skillbridge/internal/providers/github"
	"github.com/yoockh/skillbridge/internal/providers/llm"
)

const (
	githubSystemPrompt = "You are a helpful assistant that extracts skills from GitHub repos."
	resumeSystemPrompt = "You are a helpful assistant that extracts skills from resumes."

	githubMaxTokens = 150
	resumeMaxTokens = 200
)

type RepoLister interface {
	ListRepos(ctx context.Context, username string) ([]github.RepoMeta, error)
}

// Pipeline derives skill lists from GitHub metadata and resume text.
// None of its methods fail: every error degrades to a fallback result and is logged.
type Pipeline struct {
	repos    RepoLister
	ai       llm.Provider
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logrus.Logger
}

func NewPipeline(repos RepoLister, ai llm.Provider, c cache.Cache, cacheTTL time.Duration, log *logrus.Logger) *Pipeline {
	if c == nil {
		c = cache.NopCache{}
	}
	if ai == nil {
		ai = llm.Unavailable{}
	}
	return &Pipeline{repos: repos, ai: ai, cache: c, cacheTTL: cacheTTL, log: log}
}

// GitHubSkills returns the union of repository languages and AI-derived skills for username.
func (p *Pipeline) GitHubSkills(ctx context.Context, username string) []string {
	username = strings.TrimSpace(username)
	if username == "" {
		return []string{}
	}
	entry := p.log.WithField("github_username", username)

	key := cache.GitHubSkillsKey(strings.ToLower(username))
	var cached []string
	if hit, err := p.cache.GetJSON(ctx, key, &cached); err != nil {
		entry.WithError(err).Warn("github skills cache read failed")
	} else if hit {
		return cached
	}

	repos, err := p.repos.ListRepos(ctx, username)
	if err != nil {
		entry.WithError(err).Error("github repositories fetch failed, no github skills")
		return []string{}
	}

	languages := []string{}
	descriptions := make([]string, 0, len(repos))
	for _, r := range repos {
		if r.Language != "" {
			languages = append(languages, r.Language)
		}
		descriptions = append(descriptions, r.Description)
	}
	languages = dedupe(languages)
	joined := strings.Join(descriptions, "\n")

	if len(languages) == 0 && strings.TrimSpace(joined) == "" {
		entry.Warn("no languages or descriptions on github, returning empty skills")
		return []string{}
	}

	answer, err := p.ai.Complete(ctx, llm.Request{
		System:    githubSystemPrompt,
		Prompt:    githubPrompt(languages, joined),
		MaxTokens: githubMaxTokens,
	})
	if err != nil {
		entry.WithError(err).Warn("ai github extraction failed, falling back to languages")
		return languages
	}

	list, err := ParseSkillList(answer)
	if err != nil {
		entry.WithError(err).Warn("ai github answer unusable, falling back to languages")
		return languages
	}
	out := dedupe(languages, list.Names)

	if err := p.cache.SetJSON(ctx, key, out, p.cacheTTL); err != nil {
		entry.WithError(err).Warn("github skills cache write failed")
	}
	return out
}

// ResumeSkills extracts skill names from resume text, with keyword matching as fallback.
func (p *Pipeline) ResumeSkills(ctx context.Context, text string) []string {
	answer, err := p.ai.Complete(ctx, llm.Request{
		System:    resumeSystemPrompt,
		Prompt:    resumePrompt(text),
		MaxTokens: resumeMaxTokens,
	})
	if err != nil {
		p.log.WithError(err).Warn("ai resume extraction failed, using keyword fallback")
		return KeywordSkills(text)
	}

	list, err := ParseSkillList(answer)
	if err != nil {
		p.log.WithError(err).Warn("ai resume answer unusable, using keyword fallback")
		return KeywordSkills(text)
	}
	if list.Stage == StageDelimited {
		p.log.Debug("ai resume answer was not a json list, split on delimiters")
	}
	return dedupe(list.Names)
}

// Derive runs both steps and merges them. githubUsername may be empty.
func (p *Pipeline) Derive(ctx context.Context, githubUsername, resumeText string) []models.Skill {
	var fromGitHub []string
	if githubUsername != "" {
		fromGitHub = p.GitHubSkills(ctx, githubUsername)
	}
	return MergeSkills(fromGitHub, p.ResumeSkills(ctx, resumeText))
}

func githubPrompt(languages []string, descriptions string) string {
	return fmt.Sprintf(`
Extract a list of relevant programming skills, tools, and technologies mentioned or implied in the following GitHub repository descriptions and languages:

Languages: %s
Descriptions:
%s

Return the skills as a JSON array of strings only.
`, strings.Join(languages, ", "), descriptions)
}

func resumePrompt(text string) string {
	return fmt.Sprintf(`
Extract all the programming skills, tools, and technologies mentioned in this resume text:

%s

Return the skills as a JSON array of strings only.
`, text)
}
