package service

import (
	"store-console/internal/core/auth"
	"store-console/internal/domain"
	"store-console/pkg/utils"
)

type AuthService struct {
	users  domain.UserRepository
	events *EventService
	jwter  *auth.JWTer
}

func NewAuthService(users domain.UserRepository, events *EventService, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, events: events, jwter: jwter}
}

// Login 对外不区分"查无此人"和"密码不对"
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		s.events.Record(email, "failed_login")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwter.Issue(u)
	if err != nil {
		return "", nil, err
	}
	s.events.Record(u.Email, "login")
	return token, u, nil
}

// Register 开放自助注册，只产生 regular 账号
func (s *AuthService) Register(name, email, password string) (*domain.User, error) {
	u := &domain.User{
		Name:     name,
		Email:    email,
		Password: utils.HashPassword(password),
		IsAdmin:  false,
		UserType: domain.RoleRegular,
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.events.Record(email, "register")
	return u, nil
}

func (s *AuthService) Me(id uint) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
