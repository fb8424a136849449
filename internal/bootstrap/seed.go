package bootstrap

import (
	"go.uber.org/zap"

	"store-console/internal/core/config"
	"store-console/internal/domain"
	"store-console/pkg/utils"
)

// Seed 保证 main 账号与初始 super admin 存在。
// 凭据全部来自配置；没配密码就跳过（并提醒），代码里绝不落初始口令。
func Seed(users domain.UserRepository, cfg config.Seed, log *zap.Logger) error {
	if err := seedMain(users, cfg.Main, log); err != nil {
		return err
	}
	return seedAdmin(users, cfg.Admin, log)
}

func seedMain(users domain.UserRepository, acc config.SeedAccount, log *zap.Logger) error {
	existing, err := users.FirstByType(domain.RoleMain)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info("main user present, seed skipped", zap.String("email", existing.Email))
		return nil
	}

	if acc.Email == "" || acc.Password == "" {
		log.Warn("no main user in database and no seed.main credentials configured")
		return nil
	}

	// 邮箱已占用则就地提升为 main
	byEmail, err := users.FindByEmail(acc.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		err := users.UpdateFields(byEmail.ID, map[string]any{
			"user_type": domain.RoleMain,
			"is_admin":  true,
		})
		if err == nil {
			log.Info("existing user promoted to main", zap.String("email", acc.Email))
		}
		return err
	}

	u := &domain.User{
		Name:     orDefault(acc.Name, "Main"),
		Email:    acc.Email,
		Password: utils.HashPassword(acc.Password),
		IsAdmin:  true,
		UserType: domain.RoleMain,
	}
	if err := users.Create(u); err != nil {
		return err
	}
	log.Info("main user seeded", zap.String("email", acc.Email))
	return nil
}

func seedAdmin(users domain.UserRepository, acc config.SeedAccount, log *zap.Logger) error {
	if acc.Email == "" || acc.Password == "" {
		log.Warn("no seed.admin credentials configured, super admin seed skipped")
		return nil
	}
	existing, err := users.FindByEmail(acc.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	u := &domain.User{
		Name:     orDefault(acc.Name, "super admin"),
		Email:    acc.Email,
		Password: utils.HashPassword(acc.Password),
		IsAdmin:  true,
		UserType: domain.RoleAdmin,
	}
	if err := users.Create(u); err != nil {
		return err
	}
	log.Info("super admin seeded", zap.String("email", acc.Email))
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
