package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/infrastructure/memory"
	pkgjwt "github.com/spacelogix/spacelogix-api/pkg/jwt"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "spacelogix-test"
)

// fakeRevoker registra las revocaciones recibidas.
type fakeRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Revoke(token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = ttl
	return nil
}

func (f *fakeRevoker) IsRevoked(token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[token]
	return ok, nil
}

func newAuthUC(t *testing.T, revoker auth.TokenRevoker) (*auth.AuthUseCase, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, revoker, auth.JWTConfig{
		Secret:     testSecret,
		ExpSeconds: 3600,
		Issuer:     testIssuer,
	}, logger.New(logger.Config{Level: "error"}))
	return uc, repo
}

func signupReq() dto.SignupRequest {
	return dto.SignupRequest{
		Name:     "Ana García",
		Email:    "a@b.com",
		Password: "Abcdef1!",
		Role:     "customer",
		Phone:    "3001234567",
		City:     "Bogotá",
		Country:  "Colombia",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_EmiteTokenConClaims(t *testing.T) {
	uc, _ := newAuthUC(t, nil)

	out, err := uc.Signup(signupReq())
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.NotEmpty(t, claims.Subject, "sub debe llevar el id del usuario")
}

func TestSignup_EmailDuplicado_RetornaUserTaken(t *testing.T) {
	uc, _ := newAuthUC(t, nil)

	_, err := uc.Signup(signupReq())
	require.NoError(t, err)

	_, err = uc.Signup(signupReq())
	assert.ErrorIs(t, err, domain.ErrUserTaken, "el segundo signup con el mismo email debe fallar")
}

func TestSignup_NuncaGuardaPasswordEnPlano(t *testing.T) {
	uc, repo := newAuthUC(t, nil)

	_, err := uc.Signup(signupReq())
	require.NoError(t, err)

	user, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "Abcdef1!", user.HashedPassword)
	assert.NotEmpty(t, user.HashedPassword)
}

func TestSignup_NormalizaEmail(t *testing.T) {
	uc, repo := newAuthUC(t, nil)

	in := signupReq()
	in.Email = "  A@B.com "
	_, err := uc.Signup(in)
	require.NoError(t, err)

	user, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.NotNil(t, user, "el email debe guardarse en minúsculas y sin espacios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Signin
// ──────────────────────────────────────────────────────────────────────────────

func TestSignin_EmailInexistente_RetornaUserNotExists(t *testing.T) {
	uc, _ := newAuthUC(t, nil)

	_, err := uc.Signin(dto.SigninRequest{Email: "nadie@b.com", Password: "Abcdef1!", Role: "customer"})
	assert.ErrorIs(t, err, domain.ErrUserNotExists)
}

func TestSignin_PasswordIncorrecto_RetornaInvalidPassword(t *testing.T) {
	uc, _ := newAuthUC(t, nil)
	_, err := uc.Signup(signupReq())
	require.NoError(t, err)

	_, err = uc.Signin(dto.SigninRequest{Email: "a@b.com", Password: "Zzzzzz9!", Role: "customer"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestSignin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	uc, _ := newAuthUC(t, nil)
	_, err := uc.Signup(signupReq())
	require.NoError(t, err)

	out, err := uc.Signin(dto.SigninRequest{Email: "a@b.com", Password: "Abcdef1!", Role: "customer"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Signout
// ──────────────────────────────────────────────────────────────────────────────

func TestSignout_TocaUpdatedAt(t *testing.T) {
	uc, repo := newAuthUC(t, nil)
	_, err := uc.Signup(signupReq())
	require.NoError(t, err)

	before, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	user, err := uc.Signout("a@b.com", "")
	require.NoError(t, err)
	assert.True(t, user.UpdatedAt.After(before.UpdatedAt), "signout debe avanzar updatedAt")
}

func TestSignout_UsuarioInexistente_RetornaUserNotExists(t *testing.T) {
	uc, _ := newAuthUC(t, nil)

	_, err := uc.Signout("nadie@b.com", "")
	assert.ErrorIs(t, err, domain.ErrUserNotExists)
}

func TestSignout_ConRevoker_RevocaElTokenPresentado(t *testing.T) {
	revoker := newFakeRevoker()
	uc, _ := newAuthUC(t, revoker)

	out, err := uc.Signup(signupReq())
	require.NoError(t, err)

	_, err = uc.Signout("a@b.com", out.Token)
	require.NoError(t, err)

	revoked, err := revoker.IsRevoked(out.Token)
	require.NoError(t, err)
	assert.True(t, revoked, "el token presentado en signout debe quedar revocado")

	revoker.mu.Lock()
	ttl := revoker.revoked[out.Token]
	revoker.mu.Unlock()
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour, "el TTL no debe exceder la vida del token")
}

func TestSignout_SinRevoker_NoFalla(t *testing.T) {
	uc, _ := newAuthUC(t, nil)
	out, err := uc.Signup(signupReq())
	require.NoError(t, err)

	_, err = uc.Signout("a@b.com", out.Token)
	assert.NoError(t, err, "sin Redis el signout solo toca la marca de tiempo")
}
