package service

import (
	"context"
	"errors"
	"time"

	"github.com/ihsanfarabi/StreetEatsHub/internal/hash"
	"github.com/ihsanfarabi/StreetEatsHub/internal/logging"
	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/tokens"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s *AuthService) issueToken(account *models.Account, vendor *models.Vendor) (string, time.Time, error) {
	exp := time.Now().Add(s.TokenTTL)
	token, err := tokens.SignAccessToken(account.ID, account.Email, vendor.ID, s.JWTSecret, exp)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if msgs := validateRegister(req); len(msgs) > 0 {
		return nil, validationError(msgs)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	account := models.Account{
		Email:        req.Email,
		PasswordHash: pwHash,
	}
	vendor := models.Vendor{
		Name:           req.Name,
		Location:       req.Location,
		Specialty:      req.Specialty,
		WhatsAppNumber: req.WhatsAppNumber,
		IsOpen:         false,
		LastUpdated:    now,
	}

	if err := s.Repo.CreateVendorAccount(ctx, &account, &vendor); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			l.Warn("register_failed", "reason", "email taken")
		} else {
			l.Error("register_error", "error", err)
		}
		return nil, err
	}

	token, exp, err := s.issueToken(&account, &vendor)
	if err != nil {
		l.Error("register_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("vendor_registered", "vendor_id", vendor.ID)
	return &transport.AuthResponse{
		Token:   token,
		Expires: exp,
		Vendor:  transport.VendorFromModel(&vendor),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	account, err := s.Repo.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(account.PasswordHash, req.Password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	vendor, err := s.Repo.FindVendorByAccount(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "reason", "no vendor profile")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, exp, err := s.issueToken(account, vendor)
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("vendor_logged_in", "vendor_id", vendor.ID)
	return &transport.AuthResponse{
		Token:   token,
		Expires: exp,
		Vendor:  transport.VendorFromModel(vendor),
	}, nil
}
