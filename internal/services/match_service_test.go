package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/skillbridge/internal/models"
	"github.com/yoockh/skillbridge/internal/utils"
)

func TestMatchProfiles_EmptyProjectSkipsRepository(t *testing.T) {
	users := newMemUsers()
	svc := NewMatchService(users)

	for _, p := range []string{"", "   \n"} {
		_, err := svc.MatchProfiles(context.Background(), p)
		assert.Equal(t, 400, utils.HTTPStatus(err))
		assert.Equal(t, "Project Description is required.", messageOf(err))
	}
	assert.Zero(t, users.listCalls)
}

func TestMatchProfiles_Filters(t *testing.T) {
	users := newMemUsers(
		&models.User{Name: "py", Password: "h", ParsedSkills: []models.Skill{{Name: "Python"}, {Name: "Rust"}}},
		&models.User{Name: "none"},
	)
	svc := NewMatchService(users)

	got, err := svc.MatchProfiles(context.Background(), "We need Python for ETL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "py", got[0].Name)
	assert.Empty(t, got[0].Password)
	assert.Equal(t, []models.Skill{{Name: "Python"}}, got[0].ParsedSkills)
}
