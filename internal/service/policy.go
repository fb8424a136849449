package service

import "store-console/internal/domain"

// Actor 发起请求的身份，取自令牌 claims
type Actor struct {
	ID       uint
	Email    string
	Name     string
	UserType int
	IsAdmin  bool
}

// 授权矩阵是纯函数：只看角色层级和目标，不碰存储。
// main 唯一性（第二个 main）属于存储状态，由 service 在放行后单独校验。

func AllowListUsers(actor Actor) error {
	if actor.UserType >= domain.RoleAdmin {
		return nil
	}
	return Forbidden("Unauthorized")
}

// VisibleUsers main 看全部，admin 只看 regular
func VisibleUsers(actor Actor, users []domain.User) []domain.User {
	if actor.UserType == domain.RoleMain {
		return users
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.UserType == domain.RoleRegular {
			out = append(out, u)
		}
	}
	return out
}

func AllowViewUser(actor Actor, target *domain.User) error {
	switch {
	case actor.UserType == domain.RoleMain:
		return nil
	case actor.UserType == domain.RoleAdmin:
		if actor.ID == target.ID || target.UserType < domain.RoleAdmin {
			return nil
		}
		return Forbidden("Admins cannot update other admins or main users")
	default:
		if actor.ID == target.ID {
			return nil
		}
		return Forbidden("Unauthorized")
	}
}

func AllowUpdateUser(actor Actor, target *domain.User, roleChange bool) error {
	if roleChange && actor.UserType != domain.RoleMain {
		if actor.UserType == domain.RoleAdmin {
			return Forbidden("Only main users can change roles")
		}
		return Forbidden("Unauthorized to change role")
	}
	return AllowViewUser(actor, target)
}

func AllowCreateUser(actor Actor, desiredType int) error {
	if !actor.IsAdmin && actor.UserType < domain.RoleAdmin {
		return Forbidden("Only admins can create users")
	}
	if actor.UserType != domain.RoleMain && desiredType >= domain.RoleAdmin {
		return Forbidden("Only main users can create admin or main accounts")
	}
	return nil
}

func AllowDeleteUser(actor Actor, target *domain.User) error {
	switch actor.UserType {
	case domain.RoleMain:
		if actor.ID == target.ID {
			return ErrSelfDelete
		}
		return nil
	case domain.RoleAdmin:
		if actor.ID == target.ID {
			return ErrSelfDelete
		}
		if target.UserType >= domain.RoleAdmin {
			return Forbidden("Admins cannot delete other admins or main users")
		}
		return nil
	default:
		return Forbidden("Only admins can delete users")
	}
}
