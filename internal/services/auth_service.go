package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yunqiuxu/unswtalk/internal/config"
	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/mailer"
	"github.com/yunqiuxu/unswtalk/internal/media"
	"github.com/yunqiuxu/unswtalk/internal/models"
	"github.com/yunqiuxu/unswtalk/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidZID         = errors.New("zid must look like z5555555")
	ErrZIDTaken           = errors.New("zid should be unique")
	ErrInvalidPassword    = errors.New("password is empty or the two entries do not match")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrCodeMismatch       = errors.New("unmatched zid and confirmation code")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

var zidFormat = regexp.MustCompile(`^z[0-9]{7}$`)

// codeAlphabet is the pool confirmation codes draw from: digits, then
// lowercase, then uppercase.
const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// codeLength is how many characters a confirmation code has.
const codeLength = 8

type AuthService struct {
	store  *store.Store
	db     *gorm.DB
	cfg    *config.Config
	mailer mailer.Mailer
	media  *media.Storage
}

func NewAuthService(st *store.Store, db *gorm.DB, cfg *config.Config, m mailer.Mailer, av *media.Storage) *AuthService {
	return &AuthService{store: st, db: db, cfg: cfg, mailer: m, media: av}
}

// Register validates and stages a new account, then mails its confirmation
// code. The delivery outcome is logged but never inspected; a lost mail
// just means the code has to be resent by an operator.
func (s *AuthService) Register(req *dto.RegisterRequest) error {
	if !zidFormat.MatchString(req.ZID) {
		return ErrInvalidZID
	}
	if req.Password == "" || req.Password != req.PasswordConfirm {
		return ErrInvalidPassword
	}
	if req.Email == "" {
		return ErrEmailRequired
	}

	taken, err := s.store.ZIDExists(req.ZID)
	if err != nil {
		return err
	}
	if taken {
		return ErrZIDTaken
	}

	code, err := generateConfirmationCode()
	if err != nil {
		return fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	pending := models.PendingStudent{
		ZID:              req.ZID,
		Email:            req.Email,
		Password:         string(hash),
		FullName:         "Default user",
		ProfileImg:       "img/default.png",
		ConfirmationCode: code,
	}
	if err := s.store.CreatePending(&pending); err != nil {
		return err
	}

	if err := s.mailer.Send(req.Email, "Confirmation code for UNSWTalk", code); err != nil {
		slog.Error("confirmation mail failed", "zid", req.ZID, "error", err)
	}
	return nil
}

// Confirm matches a pending registration against its emailed code and, on
// success, promotes it to an active account and prepares its avatar
// directory.
func (s *AuthService) Confirm(zid, code string) error {
	pending, err := s.store.PendingProfile(zid)
	if err != nil {
		return err
	}
	if pending.ConfirmationCode != code {
		return ErrCodeMismatch
	}

	if _, err := s.store.ConfirmPending(zid); err != nil {
		return err
	}

	if err := s.media.EnsureStudentDir(zid); err != nil {
		slog.Error("avatar directory creation failed", "zid", zid, "error", err)
	}
	return nil
}

// Login authenticates zid and password and issues a token pair. Suspended
// accounts may still log in — that is how they reactivate themselves.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var hashed string
	suspended, err := s.store.IsSuspended(req.ZID)
	if err != nil {
		return nil, err
	}
	if suspended {
		profile, err := s.store.SuspendedProfile(req.ZID)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		hashed = profile.Password
	} else {
		profile, err := s.store.Profile(req.ZID)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		hashed = profile.Password
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(req.ZID, suspended)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	suspended, err := s.store.IsSuspended(stored.ZID)
	if err != nil {
		return nil, err
	}
	return s.generateTokenPair(stored.ZID, suspended)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateTokenPair(zid string, suspended bool) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(zid, suspended)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(zid)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ZID:          zid,
		Suspended:    suspended,
	}, nil
}

func (s *AuthService) generateAccessToken(zid string, suspended bool) (string, error) {
	claims := jwt.MapClaims{
		"sub":       zid,
		"suspended": suspended,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(zid string) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	record := models.RefreshToken{
		ZID:       zid,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

// generateConfirmationCode draws codeLength distinct characters from
// codeAlphabet.
func generateConfirmationCode() (string, error) {
	remaining := []byte(codeAlphabet)
	code := make([]byte, 0, codeLength)
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(remaining))))
		if err != nil {
			return "", err
		}
		idx := int(n.Int64())
		code = append(code, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return string(code), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
