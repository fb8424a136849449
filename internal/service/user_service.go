package service

import (
	"fmt"

	"store-console/internal/domain"
	"store-console/pkg/utils"
)

type UserService struct {
	users  domain.UserRepository
	events *EventService
}

func NewUserService(users domain.UserRepository, events *EventService) *UserService {
	return &UserService{users: users, events: events}
}

func (s *UserService) List(actor Actor) ([]domain.User, error) {
	if err := AllowListUsers(actor); err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	return VisibleUsers(actor, users), nil
}

// Get 先查存在再查权限（沿用旧行为，存在性会泄露给无权限调用方）
func (s *UserService) Get(actor Actor, id uint) (*domain.User, error) {
	target, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if err := AllowViewUser(actor, target); err != nil {
		return nil, err
	}
	return target, nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	UserType int
}

func (s *UserService) Create(actor Actor, in CreateUserInput) (*domain.User, error) {
	if err := AllowCreateUser(actor, in.UserType); err != nil {
		return nil, err
	}
	if in.UserType == domain.RoleMain {
		existing, err := s.users.FirstByType(domain.RoleMain)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrMainUserExists
		}
	}

	u := &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: utils.HashPassword(in.Password),
		IsAdmin:  in.UserType >= domain.RoleAdmin,
		UserType: in.UserType,
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.events.Record(actor.Email, "create_user:"+in.Email)
	return u, nil
}

// UpdateUserInput UserType 为 nil 表示本次不动角色
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	UserType *int
}

func (s *UserService) Update(actor Actor, id uint, in UpdateUserInput) (*domain.User, error) {
	if in.Name == "" && in.Email == "" && in.Password == "" && in.UserType == nil {
		return nil, Invalid("At least one field (name, email, password) is required")
	}

	target, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if err := AllowUpdateUser(actor, target, in.UserType != nil); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Password != "" {
		fields["password"] = utils.HashPassword(in.Password)
	}
	if in.UserType != nil {
		desired := *in.UserType
		if desired == domain.RoleMain {
			existing, err := s.users.FirstByType(domain.RoleMain)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrMainUserExists
			}
		}
		fields["user_type"] = desired
		// is_admin 始终跟随 user_type
		fields["is_admin"] = desired >= domain.RoleAdmin
	}

	if err := s.users.UpdateFields(id, fields); err != nil {
		if isDupKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.events.Record(actor.Email, fmt.Sprintf("update_user:%d", id))
	if in.Password != "" {
		s.events.Record(target.Email, "password_change")
	}
	return s.users.FindByID(id)
}

func (s *UserService) Delete(actor Actor, id uint) error {
	target, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}
	if err := AllowDeleteUser(actor, target); err != nil {
		return err
	}

	deleted, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.events.Record(actor.Email, fmt.Sprintf("delete_user:%d", id))
	return nil
}
