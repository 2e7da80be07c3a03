package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/skillbridge/internal/models"
	mongorepo "github.com/yoockh/skillbridge/internal/repositories/mongo"
	"github.com/yoockh/skillbridge/internal/utils"
)

type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

type LoginResult struct {
	Token string         `json:"token"`
	User  models.Summary `json:"user"`
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	users  mongorepo.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users mongorepo.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) error {
	const op = "AuthService.Signup"

	in.Name = strings.TrimSpace(in.Name)
	in.Email = models.NormalizeEmail(in.Email)
	in.Role = models.UserRole(strings.ToLower(strings.TrimSpace(string(in.Role))))

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Fill all fields", nil)
	}
	if !in.Role.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "Role must be employee or recruiter", nil)
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return utils.E(utils.CodeInvalidArgument, op, "User already exists!", nil)
	case !errors.Is(err, utils.ErrNotFound):
		return utils.E(utils.CodeInternal, op, "Server Error", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Server Error", err)
	}

	err = s.users.Create(ctx, &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	})
	if errors.Is(err, utils.ErrDuplicate) {
		// lost a race with a concurrent signup
		return utils.E(utils.CodeInvalidArgument, op, "User already exists!", err)
	}
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "AuthService.Login"

	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Fill All Fields", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Credentials", nil)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	if !utils.PasswordMatches(u.Password, password) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Credentials", nil)
	}

	token, err := s.tokens.Issue(u.ID.Hex(), string(u.Role))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server Error", err)
	}
	return &LoginResult{Token: token, User: u.Summary()}, nil
}
