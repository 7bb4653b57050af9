package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AuthService owns the user directory and the admin privilege check. The
// directory lives under its own key; the "current session" is a JWT cookie
// pair, and the user view handed out never carries the password hash.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  storage.Store
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, store storage.Store) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		store:  store,
	}
}

func (as *AuthService) users(ctx context.Context) []structs.UserRecord {
	return storage.Read(ctx, as.store, storage.KeyUsers, []structs.UserRecord{})
}

// Login matches the email case-insensitively against the directory and
// verifies the password hash. Unknown email and wrong password both come
// back as ErrInvalidCredentials so responses cannot enumerate users.
func (as *AuthService) Login(ctx context.Context, email, password string) (*structs.User, error) {
	var record *structs.UserRecord
	for _, u := range as.users(ctx) {
		if strings.EqualFold(u.Email, email) {
			record = &u
			break
		}
	}

	if record == nil {
		as.logger.Debug("Login attempt for unknown email", gecho.Field("identifier", email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(password, record.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", record.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}
	if !valid {
		as.logger.Debug("Invalid password attempt", gecho.Field("user_id", record.Id))
		return nil, lib.ErrInvalidCredentials
	}

	user := record.User
	as.logger.Debug("User logged in", gecho.Field("user_id", user.Id))
	return &user, nil
}

// Register appends a new directory entry and returns the session view of the
// user so the caller can auto-login. Duplicate emails (case-insensitive)
// fail with ErrDuplicateEmail.
func (as *AuthService) Register(ctx context.Context, name, email, password string) (*structs.User, error) {
	users := as.users(ctx)

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			as.logger.Warn("Registration failed - duplicate email", gecho.Field("email", email))
			return nil, lib.ErrDuplicateEmail
		}
	}

	passwordHash, err := as.HashPassword(password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	record := structs.UserRecord{
		User: structs.User{
			Id:        uuid.New(),
			Name:      name,
			Email:     email,
			CreatedAt: time.Now(),
		},
		PasswordHash: passwordHash,
	}

	users = append(users, record)
	if err := storage.Write(ctx, as.store, storage.KeyUsers, users); err != nil {
		return nil, err
	}

	as.logger.Debug("User registered", gecho.Field("user_id", record.Id))
	user := record.User
	return &user, nil
}

// UserByID returns the session view for the given id.
func (as *AuthService) UserByID(ctx context.Context, id uuid.UUID) (*structs.User, error) {
	for _, u := range as.users(ctx) {
		if u.Id == id {
			user := u.User
			return &user, nil
		}
	}
	return nil, lib.ErrNotFound
}

// HasUser reports whether an email exists in the directory. Used by the
// password-reset flow, which reports success either way.
func (as *AuthService) HasUser(ctx context.Context, email string) (*structs.User, bool) {
	for _, u := range as.users(ctx) {
		if strings.EqualFold(u.Email, email) {
			user := u.User
			return &user, true
		}
	}
	return nil, false
}

// LoginAdmin checks the configured admin credentials. The admin is a UI
// privilege rather than a directory entry, so success yields synthetic
// claims with the admin role instead of a user record.
func (as *AuthService) LoginAdmin(username, password string) bool {
	usernameOk := lib.SecureCompareString(username, as.cfg.Admin.Username)
	passwordOk := lib.SecureCompareString(password, as.cfg.Admin.Password)
	return usernameOk && passwordOk
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	return fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash), nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)
	return lib.SecureCompare(hash, parts.Hash), nil
}

// GenerateAccessToken generates a JWT access token for the given subject.
func (as *AuthService) GenerateAccessToken(sub uuid.UUID, email, role string) (string, error) {
	return as.generateToken(sub, email, role, as.GetAccessTokenExpiration(), as.cfg.Auth.AccessTokenSecret)
}

// GenerateRefreshToken generates a JWT refresh token for the given subject.
func (as *AuthService) GenerateRefreshToken(sub uuid.UUID, email, role string) (string, error) {
	return as.generateToken(sub, email, role, as.GetRefreshTokenExpiration(), as.cfg.Auth.RefreshTokenSecret)
}

func (as *AuthService) generateToken(sub uuid.UUID, email, role string, exp time.Time, secret string) (string, error) {
	claims := &structs.AuthClaims{
		Sub:   sub,
		Email: email,
		Role:  role,
		Iat:   time.Now(),
		Exp:   exp,
		Jti:   uuid.New(),
	}
	return lib.SignClaims(claims, secret)
}

func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
