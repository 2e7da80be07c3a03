package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/skillbridge/internal/models"
)

func TestMergeSkills(t *testing.T) {
	got := MergeSkills([]string{"Python", "Docker"}, []string{"Docker", "SQL"})

	assert.Equal(t, []models.Skill{
		{Name: "Python", Confidence: 65, Source: "GitHub"},
		{Name: "Docker", Confidence: 95, Source: "GitHub+Resume"},
		{Name: "SQL", Confidence: 50, Source: "Resume"},
	}, got)
}

func TestMergeSkills_Empty(t *testing.T) {
	assert.Empty(t, MergeSkills(nil, nil))
	assert.NotNil(t, MergeSkills(nil, nil))
}

func TestMergeSkills_CaseVariantsStaySeparate(t *testing.T) {
	got := MergeSkills([]string{"docker"}, []string{"Docker"})
	require.Len(t, got, 2)
	assert.Equal(t, "GitHub", got[0].Source)
	assert.Equal(t, "Resume", got[1].Source)
}

func TestMergeSkills_ConfidenceBounds(t *testing.T) {
	for _, s := range MergeSkills([]string{"A", "B"}, []string{"B", "C"}) {
		assert.GreaterOrEqual(t, s.Confidence, 20)
		assert.LessOrEqual(t, s.Confidence, 100)
	}
}

func TestKeywordSkills(t *testing.T) {
	got := KeywordSkills("Built services in javascript and DOCKER on linux")
	assert.Equal(t, []string{"JavaScript", "Java", "Docker", "Linux"}, got)
}

func TestKeywordSkills_NoMatch(t *testing.T) {
	assert.Equal(t, []string{}, KeywordSkills("pottery and gardening"))
}

func TestVocabularySize(t *testing.T) {
	assert.Len(t, Vocabulary, 32)
}

func TestParseSkillList(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  []string
		stage Stage
	}{
		{"json", `["Go", "Docker"]`, []string{"Go", "Docker"}, StageStructured},
		{"fenced json", "```json\n[\"Go\",\"gRPC\"]\n```", []string{"Go", "gRPC"}, StageStructured},
		{"empty json list", `[]`, []string{}, StageStructured},
		{"delimited", "Python, Flask\nSQL,,", []string{"Python", "Flask", "SQL"}, StageDelimited},
		{"empty", "   ", []string{}, StageDelimited},
		{"only separators", ", \n ,", []string{}, StageDelimited},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSkillList(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.stage, got.Stage)
			assert.Equal(t, tc.want, got.Names)
		})
	}
}

func TestParseSkillList_RejectsOtherJSON(t *testing.T) {
	for _, raw := range []string{
		`{"skills": ["Go", "Docker"]}`,
		"```json\n{\"skills\": [\"Go\"]}\n```",
		`[1, 2]`,
		`"Go"`,
		`null`,
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseSkillList(raw)
			require.ErrorIs(t, err, ErrNotSkillList)
		})
	}
}

func TestReuseParsedSkills(t *testing.T) {
	url := "/uploads/1-a.pdf"
	other := "/uploads/2-b.pdf"
	withSkills := &models.User{
		Resume:       models.Resume{FileURL: &url},
		ParsedSkills: []models.Skill{{Name: "Go", Confidence: 50, Source: "Resume"}},
	}
	noSkills := &models.User{Resume: models.Resume{FileURL: &url}}

	assert.True(t, ReuseParsedSkills(withSkills, url))
	assert.False(t, ReuseParsedSkills(withSkills, other))
	assert.False(t, ReuseParsedSkills(noSkills, url))
	assert.False(t, ReuseParsedSkills(&models.User{}, ""))
	assert.False(t, ReuseParsedSkills(nil, url))
}

func TestMatchProfiles(t *testing.T) {
	users := []models.User{
		{Name: "a", ParsedSkills: []models.Skill{
			{Name: "Python", Confidence: 65, Source: "GitHub"},
			{Name: "Rust", Confidence: 50, Source: "Resume"},
		}},
		{Name: "b", ParsedSkills: []models.Skill{{Name: "Java", Confidence: 50, Source: "Resume"}}},
		{Name: "c"},
	}

	got := MatchProfiles(users, "Need a PYTHON dev")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, []models.Skill{{Name: "Python", Confidence: 65, Source: "GitHub"}}, got[0].ParsedSkills)

	// input is not mutated
	assert.Len(t, users[0].ParsedSkills, 2)
}

func TestMatchProfiles_SubstringIsNaive(t *testing.T) {
	users := []models.User{{Name: "j", ParsedSkills: []models.Skill{{Name: "Java"}}}}
	got := MatchProfiles(users, "javascript frontend")
	require.Len(t, got, 1)
}
