package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
	jwtauth "github.com/m04kA/RoomBookingService/pkg/auth"
)

// Service вход по общему коду
type Service struct {
	repo          AssociationRepository
	verifier      Verifier
	tokens        TokenIssuer
	adminCodeHash string
	logger        Logger
}

// NewService создает сервис входа. adminCodeHash - bcrypt-хеш кода администратора.
func NewService(
	repo AssociationRepository,
	verifier Verifier,
	tokens TokenIssuer,
	adminCodeHash string,
	logger Logger,
) *Service {
	return &Service{
		repo:          repo,
		verifier:      verifier,
		tokens:        tokens,
		adminCodeHash: adminCodeHash,
		logger:        logger,
	}
}

// Login проверяет код: сначала код администратора, затем коды всех ассоциаций
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		s.logger.Warn("Login: empty code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	// 1. Администратор
	if s.verifier.Verify(s.adminCodeHash, code) {
		s.logger.Info("Login: admin logged in")
		return s.issue(jwtauth.Identity{Role: string(domain.RoleAdmin)})
	}

	// 2. Ассоциации
	associations, err := s.repo.ListCredentials(ctx)
	if err != nil {
		s.logger.Error("Login: failed to list associations: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	for _, a := range associations {
		if s.verifier.Verify(a.CodeHash, code) {
			s.logger.Info("Login: association id=%d logged in", a.ID)
			return s.issue(jwtauth.Identity{
				Role:            string(domain.RoleAssociation),
				AssociationID:   a.ID,
				AssociationName: a.Name,
			})
		}
	}

	s.logger.Warn("Login: code did not match any of %d associations", len(associations))
	return nil, ErrInvalidCode
}

func (s *Service) issue(identity jwtauth.Identity) (*LoginResponse, error) {
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &LoginResponse{
		Token:           token,
		ExpiresAt:       expiresAt.Format(time.RFC3339),
		Role:            identity.Role,
		AssociationID:   identity.AssociationID,
		AssociationName: identity.AssociationName,
	}, nil
}
