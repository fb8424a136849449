package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"store-console/internal/core/auth"
	"store-console/internal/domain"
	"store-console/internal/repo"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 24 * time.Hour}
}

type fixture struct {
	db     *gorm.DB
	users  *repo.UserRepo
	stores *repo.StoreRepo
	events *repo.EventRepo

	auth     *AuthService
	user     *UserService
	store    *StoreService
	eventSvc *EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Store{}, &domain.Event{}))

	f := &fixture{
		db:     db,
		users:  repo.NewUserRepo(db),
		stores: repo.NewStoreRepo(db),
		events: repo.NewEventRepo(db),
	}
	f.eventSvc = NewEventService(f.events, zap.NewNop())
	f.auth = NewAuthService(f.users, f.eventSvc, testJWTer())
	f.user = NewUserService(f.users, f.eventSvc)
	f.store = NewStoreService(f.stores)
	return f
}

func (f *fixture) mustCreateUser(t *testing.T, name, email string, userType int) *domain.User {
	t.Helper()
	u, err := f.auth.Register(name, email, "secret123")
	require.NoError(t, err)
	if userType != domain.RoleRegular {
		require.NoError(t, f.users.UpdateFields(u.ID, map[string]any{
			"user_type": userType,
			"is_admin":  userType >= domain.RoleAdmin,
		}))
		u, err = f.users.FindByID(u.ID)
		require.NoError(t, err)
	}
	return u
}

func asActor(u *domain.User) Actor {
	return Actor{ID: u.ID, Email: u.Email, Name: u.Name, UserType: u.UserType, IsAdmin: u.IsAdmin}
}

func validStore(code string) StoreInput {
	return StoreInput{
		Code:        code,
		Designation: "Mr",
		Manager:     "John Doe",
		Email:       "j@x.com",
		Mobile:      "9876543210",
		StoreType:   "store",
	}
}
