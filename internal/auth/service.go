package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recircle-platform/recircle-backend/internal/partners"
	"github.com/recircle-platform/recircle-backend/pkg/config"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	"github.com/recircle-platform/recircle-backend/pkg/security"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Success     bool   `json:"success"`
	PartnerID   int64  `json:"partner_id"`
	PartnerName string `json:"partner_name"`
	Token       string `json:"token"`
}

// Claims is the JWT payload issued on login.
type Claims struct {
	PartnerID   int64  `json:"partner_id"`
	PartnerName string `json:"partner_name"`
	jwt.RegisteredClaims
}

// Service authenticates partners and mints session tokens.
type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ParseToken(tokenString string) (*Claims, error)
}

type service struct {
	repo *partners.Repository
	cfg  config.JWTConfig
	logg *logger.Logger
	now  func() time.Time
}

func NewService(repo *partners.Repository, cfg config.JWTConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("partners repository required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{repo: repo, cfg: cfg, logg: logg, now: time.Now}, nil
}

// Login checks credentials against the stored argon2id hash and issues a
// signed token. Unknown usernames and bad passwords fail identically so
// the response does not reveal which one was wrong.
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	invalid := pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")

	if username == "" || password == "" {
		return nil, invalid
	}

	partner, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading partner")
	}
	if partner == nil || partner.PasswordHash == "" {
		return nil, invalid
	}

	ok, err := security.VerifyPassword(password, partner.PasswordHash)
	if err != nil || !ok {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithPartnerID(ctx, partner.ID), "login rejected")
		}
		return nil, invalid
	}

	token, err := s.issueToken(partner.ID, partner.Name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "signing token")
	}

	return &LoginResult{
		Success:     true,
		PartnerID:   partner.ID,
		PartnerName: partner.Name,
		Token:       token,
	}, nil
}

func (s *service) issueToken(partnerID int64, partnerName string) (string, error) {
	now := s.now()
	claims := Claims{
		PartnerID:   partnerID,
		PartnerName: partnerName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   fmt.Sprintf("%d", partnerID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiration())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ParseToken validates a token string and returns its claims.
func (s *service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Invalid token")
	}
	if !token.Valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid token")
	}
	return claims, nil
}
