package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
	"github.com/jhoicas/directorio-api/pkg/password"
)

// Mensajes del gate de autenticación, entregados tal cual al cliente.
const (
	msgMissingAPIKey    = "Please add the API key. Sign up if you do not have one."
	msgInvalidAPIKey    = "User not authenticated, check the API key."
	msgUnknownEmail     = "No user with this email. You need to sign up."
	msgWrongPassword    = "Incorrect password."
	msgSignUpIncomplete = "Email and password cannot be blank."
	msgPasswordTooLong  = "Password is too long."
)

// apiKeyBytes entropía de la API key (128 bits → 32 caracteres hex).
const apiKeyBytes = 16

// AuthUseCase registro de usuarios y resolución del usuario que llama (gate).
// Ninguna operación de autenticación modifica registros.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher password.Hasher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, now: time.Now}
}

// SignUp crea un usuario con rol user y API key nueva. El email duplicado lo detecta el store
// (domain.ErrConflict); no se consulta antes.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.APIKeyResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.NewError(domain.ErrValidation, msgSignUpIncomplete)
	}
	user, err := uc.newUser(in.Name, in.Email, in.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.APIKeyResponse{APIKey: user.APIKey}, nil
}

// AuthenticateAPIKey resuelve el usuario por API key. Una key vacía cuenta como ausente.
func (uc *AuthUseCase) AuthenticateAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	if apiKey == "" {
		return nil, domain.NewError(domain.ErrMissingCredential, msgMissingAPIKey)
	}
	user, err := uc.userRepo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewError(domain.ErrInvalidCredential, msgInvalidAPIKey)
	}
	return user, nil
}

// AuthenticatePassword resuelve el usuario por email y verifica la contraseña.
func (uc *AuthUseCase) AuthenticatePassword(ctx context.Context, email, plain string) (*entity.User, error) {
	var user *entity.User
	if email != "" {
		var err error
		user, err = uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.NewError(domain.ErrUnknownIdentity, msgUnknownEmail)
	}
	if plain == "" || !uc.hasher.Verify(plain, user.PasswordHash) {
		return nil, domain.NewError(domain.ErrInvalidCredential, msgWrongPassword)
	}
	return user, nil
}

// EnsureSuperadmin crea el superadmin, o promueve al usuario existente con ese email.
// Es la única vía para obtener el rol superadmin (uso de operador, cmd/seed).
func (uc *AuthUseCase) EnsureSuperadmin(ctx context.Context, name, email, plain string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" || plain == "" {
		return nil, domain.NewError(domain.ErrValidation, msgSignUpIncomplete)
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Role != entity.RoleSuperadmin {
			if err := uc.userRepo.UpdateRole(ctx, existing.ID, entity.RoleSuperadmin); err != nil {
				return nil, err
			}
			existing.Role = entity.RoleSuperadmin
		}
		return existing, nil
	}
	user, err := uc.newUser(name, email, plain, entity.RoleSuperadmin)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) newUser(name, email, plain string, role entity.Role) (*entity.User, error) {
	hash, err := uc.hasher.Hash(plain)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, domain.NewError(domain.ErrValidation, msgPasswordTooLong)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	key, err := GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	return &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		APIKey:       key,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GenerateAPIKey devuelve 16 bytes aleatorios de crypto/rand en hex minúscula.
func GenerateAPIKey() (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar api key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
