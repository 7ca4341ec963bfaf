package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rh-admin-api/internal/application/auth"
	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/pkg/hash"
	"github.com/jhoicas/rh-admin-api/pkg/token"
)

// fake mínimo del puerto UserRepository: solo GetByEmail tiene datos.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) (int64, error) { return 0, nil }
func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error)  { return nil, nil }
func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) error  { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ int64) error         { return nil }

func newLoginUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	digest, err := hash.LegacyMD5{}.Hash("secret")
	require.NoError(t, err)
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@x.com": {
			ID: 1, Name: "Ana", LastName: "Ruiz", Email: "ana@x.com",
			PasswordDigest: digest, Agency: "North",
		},
	}}
	return auth.NewAuthUseCase(repo, hash.LegacyMD5{})
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newLoginUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "secret"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Len(t, out.Token, token.Length, "el token siempre tiene longitud fija")
	assert.Equal(t, "ana@x.com", out.User.Email)
	assert.Equal(t, "Ana", out.User.Name)
}

func TestLogin_TokensDistintosPorLogin(t *testing.T) {
	uc := newLoginUC(t)
	ctx := context.Background()
	in := dto.LoginRequest{Email: "ana@x.com", Password: "secret"}

	a, err := uc.Login(ctx, in)
	require.NoError(t, err)
	b, err := uc.Login(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
}

// Email desconocido y contraseña incorrecta devuelven exactamente el mismo
// error: el caller no puede distinguir qué parte falló.
func TestLogin_MismoErrorParaEmailYPassword(t *testing.T) {
	uc := newLoginUC(t)
	ctx := context.Background()

	_, errUnknown := uc.Login(ctx, dto.LoginRequest{Email: "nadie@x.com", Password: "secret"})
	_, errWrongPw := uc.Login(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "mal"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}
