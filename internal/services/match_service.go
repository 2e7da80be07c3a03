package services

import (
	"context"
	"strings"

	"github.com/yoockh/skillbridge/internal/models"
	mongorepo "github.com/yoockh/skillbridge/internal/repositories/mongo"
	"github.com/yoockh/skillbridge/internal/skills"
	"github.com/yoockh/skillbridge/internal/utils"
)

type MatchService interface {
	MatchProfiles(ctx context.Context, project string) ([]models.User, error)
}

type matchService struct {
	users mongorepo.UserRepository
}

func NewMatchService(users mongorepo.UserRepository) MatchService {
	return &matchService{users: users}
}

func (s *matchService) MatchProfiles(ctx context.Context, project string) ([]models.User, error) {
	const op = "MatchService.MatchProfiles"

	if strings.TrimSpace(project) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Project Description is required.", nil)
	}

	users, err := s.users.ListProfiles(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return skills.MatchProfiles(users, project), nil
}
