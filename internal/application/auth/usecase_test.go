package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dorozco/pedidos-api/internal/application/auth"
	"github.com/dorozco/pedidos-api/internal/application/dto"
	"github.com/dorozco/pedidos-api/internal/domain"
	"github.com/dorozco/pedidos-api/internal/domain/entity"
	pkgjwt "github.com/dorozco/pedidos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pedidos-api-test"
)

// fakeUserRepo repositorio en memoria para los tests del use case.
type fakeUserRepo struct {
	users       map[string]*entity.User // por ID
	getEmailErr error                   // error a devolver en GetByEmail (simula fallo de DB)
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.getEmailErr != nil {
		return nil, r.getEmailErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func newUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestRegister_CreaUsuarioConHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "test@Example.COM",
		Password: "testpass123",
		Name:     "Test Name",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// El dominio del email se normaliza a minúsculas
	assert.Equal(t, "test@example.com", out.Email)
	assert.Equal(t, "Test Name", out.Name)
	assert.True(t, out.IsActive)
	assert.NotEmpty(t, out.ID)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "testpass123", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("testpass123")))
}

func TestRegister_EmailVacioFalla(t *testing.T) {
	uc := newUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Email: "   ", Password: "testpass123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "otherpass123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_FalloDeLecturaNoCreaCuenta(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getEmailErr = errors.New("connection refused")
	uc := newUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123"})
	assert.ErrorIs(t, err, repo.getEmailErr)
	assert.Empty(t, repo.users)
}

func TestIssueToken_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	created, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123", Name: "Test"})
	require.NoError(t, err)

	out, err := uc.IssueToken(dto.TokenRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "test@example.com", email)
}

func TestIssueToken_PasswordIncorrecto(t *testing.T) {
	uc := newUC(newFakeUserRepo())
	_, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)

	_, err = uc.IssueToken(dto.TokenRequest{Email: "test@example.com", Password: "not_correct"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestIssueToken_UsuarioInexistente(t *testing.T) {
	uc := newUC(newFakeUserRepo())

	_, err := uc.IssueToken(dto.TokenRequest{Email: "nadie@example.com", Password: "whatever123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIssueToken_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	created, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)
	repo.users[created.ID].IsActive = false

	_, err = uc.IssueToken(dto.TokenRequest{Email: "test@example.com", Password: "testpass123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProfile_NombreYPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	created, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123", Name: "Original"})
	require.NoError(t, err)

	newName := "updated"
	newPass := "newpassword123"
	out, err := uc.UpdateProfile(created.ID, dto.UpdateMeRequest{Name: &newName, Password: &newPass})
	require.NoError(t, err)
	assert.Equal(t, "updated", out.Name)
	assert.Equal(t, "test@example.com", out.Email)

	stored, _ := repo.GetByID(created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPass)))
}

func TestUpdateProfile_SoloNombreDejaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	created, err := uc.Register(dto.RegisterRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)

	newName := "solo nombre"
	_, err = uc.UpdateProfile(created.ID, dto.UpdateMeRequest{Name: &newName})
	require.NoError(t, err)

	stored, _ := repo.GetByID(created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("testpass123")),
		"el password original debe seguir vigente")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Juan.Perez@example.com", auth.NormalizeEmail("Juan.Perez@EXAMPLE.com"),
		"la parte local se respeta, el dominio va en minúsculas")
	assert.Equal(t, "sin-arroba", auth.NormalizeEmail("  sin-arroba  "))
}
