package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
	"github.com/spacelogix/spacelogix-api/pkg/jwt"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// bcryptCost factor de trabajo del hash de passwords.
const bcryptCost = 10

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpSeconds int
	Issuer     string
}

// TokenRevoker puerto para el set de tokens revocados en signout. Puede ser nil:
// en ese caso un token emitido vale hasta su expiración natural.
type TokenRevoker interface {
	Revoke(token string, ttl time.Duration) error
	IsRevoked(token string) (bool, error)
}

// AuthUseCase casos de uso de autenticación: signup, signin y signout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoker  TokenRevoker
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso. revoker puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, revoker TokenRevoker, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg, log: log}
}

// Signup crea un usuario: hashea el password con bcrypt (cost 10), persiste y
// devuelve un token firmado. Devuelve ErrUserTaken si el email ya existe.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		HashedPassword: string(hash),
		Role:           entity.Role(in.Role),
		Phone:          in.Phone,
		Address:        in.Address,
		City:           in.City,
		Country:        in.Country,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("email", email).Str("role", in.Role).Msg("usuario registrado")
	return uc.signToken(user)
}

// Signin verifica email/password y devuelve un token con la misma forma que signup.
// ErrUserNotExists si el email no existe; ErrInvalidPassword si el hash no coincide.
func (uc *AuthUseCase) Signin(in dto.SigninRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotExists
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	return uc.signToken(user)
}

// Signout toca el updatedAt del usuario como marcador de sesión y, si hay un
// TokenRevoker configurado, revoca el token presentado por lo que le quede de vida.
func (uc *AuthUseCase) Signout(email, token string) (*entity.User, error) {
	user, err := uc.userRepo.TouchUpdatedAt(normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotExists
	}
	if uc.revoker != nil && token != "" {
		claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
		if err == nil {
			if ttl := claims.RemainingLife(); ttl > 0 {
				if err := uc.revoker.Revoke(token, ttl); err != nil {
					// La revocación es mejor-esfuerzo: el signout no falla por Redis caído.
					uc.log.Warn().Err(err).Str("email", email).Msg("no se pudo revocar el token")
				}
			}
		}
	}
	return user, nil
}

func (uc *AuthUseCase) signToken(user *entity.User) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpSeconds)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
