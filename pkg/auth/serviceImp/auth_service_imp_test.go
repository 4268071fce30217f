package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cultivos/database/testdb"
	"cultivos/entities"
	"cultivos/pkg/apperr"
	"cultivos/pkg/auth/repositoryImp"
	"cultivos/pkg/auth/service"
)

func newSvc(t *testing.T) (service.AuthService, *gorm.DB) {
	db := testdb.Open(t)
	svc := NewAuthService(repositoryImp.New(db), "admin", zap.NewNop())
	require.NoError(t, svc.EnsureAdmin("admin123"))
	return svc, db
}

func email(s string) *string { return &s }

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, db := newSvc(t)
	require.NoError(t, svc.EnsureAdmin("changed"))

	var n int64
	require.NoError(t, db.Model(&entities.User{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	u, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestLogin(t *testing.T) {
	svc, db := newSvc(t)
	_, err := svc.CreateUser(service.CreateUserInput{Username: "ana", Password: "pw", Email: email("ana@example.com")})
	require.NoError(t, err)

	var stored entities.User
	require.NoError(t, db.Where("username = ?", "ana").First(&stored).Error)
	assert.NotEqual(t, "pw", stored.Password, "passwords are hashed")
	assert.Equal(t, entities.RoleUser, stored.Role)

	u, err := svc.Login("ana", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", *u.Email)

	_, err = svc.Login("ana", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login("nobody", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestLoginUpgradesPlaintextPassword(t *testing.T) {
	svc, db := newSvc(t)
	require.NoError(t, db.Create(&entities.User{Username: "viejo", Password: "secreto", Role: entities.RoleUser}).Error)

	_, err := svc.Login("viejo", "otro")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login("viejo", "secreto")
	require.NoError(t, err)

	var stored entities.User
	require.NoError(t, db.Where("username = ?", "viejo").First(&stored).Error)
	assert.True(t, isHash(stored.Password))

	_, err = svc.Login("viejo", "secreto")
	assert.NoError(t, err)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.CreateUser(service.CreateUserInput{Username: " ", Password: "x"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.CreateUser(service.CreateUserInput{Username: "x", Password: "x", Role: "root"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.CreateUser(service.CreateUserInput{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	svc, _ := newSvc(t)
	_, err := svc.CreateUser(service.CreateUserInput{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	u, err := svc.UpdateUser("ana", service.UpdateUserInput{Username: "ana.m", Email: email(" ana@example.com ")})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", *u.Email)

	_, err = svc.Login("ana.m", "pw")
	assert.NoError(t, err, "empty password keeps the current one")

	_, err = svc.UpdateUser("ana.m", service.UpdateUserInput{Username: "ana.m", Password: "nuevo"})
	require.NoError(t, err)
	_, err = svc.Login("ana.m", "nuevo")
	assert.NoError(t, err)

	_, err = svc.UpdateUser("ghost", service.UpdateUserInput{Username: "g"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, svc.DeleteUser("ana.m"))
	assert.ErrorIs(t, svc.DeleteUser("ana.m"), apperr.ErrNotFound)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestAdminIsProtected(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.UpdateUser("admin", service.UpdateUserInput{Username: "root"})
	assert.ErrorIs(t, err, service.ErrProtectedUser)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteUser("admin"), service.ErrProtectedUser)
}

func TestRecoverByEmail(t *testing.T) {
	svc, _ := newSvc(t)
	_, err := svc.CreateUser(service.CreateUserInput{Username: "ana", Password: "olvidada", Email: email("ana@example.com")})
	require.NoError(t, err)

	rec, err := svc.RecoverByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", rec.Username)
	assert.Len(t, rec.TemporaryPassword, 12)

	_, err = svc.Login("ana", "olvidada")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login("ana", rec.TemporaryPassword)
	assert.NoError(t, err)

	_, err = svc.RecoverByEmail("nadie@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.RecoverByEmail("")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
