package associations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/RoomBookingService/internal/domain"
	associationRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/association"
	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
	"github.com/m04kA/RoomBookingService/pkg/credential"
)

// Service администрирование ассоциаций. Доступ проверяется на уровне роутера (роль admin).
type Service struct {
	repo      AssociationRepository
	hasher    Hasher
	txManager TransactionManager
	validator *requestValidator
	logger    Logger
}

// NewService создает новый экземпляр сервиса ассоциаций
func NewService(
	repo AssociationRepository,
	hasher Hasher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		txManager: txManager,
		validator: newRequestValidator(),
		logger:    logger,
	}
}

// List возвращает все ассоциации с количеством бронирований
func (s *Service) List(ctx context.Context) ([]models.AssociationResponse, error) {
	associations, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.AssociationResponse, 0, len(associations))
	for _, a := range associations {
		result = append(result, models.FromDomainAssociation(a))
	}

	s.logger.Info("List: fetched %d associations", len(result))
	return result, nil
}

// Create создает ассоциацию, пароль сохраняется в виде bcrypt-хеша
func (s *Service) Create(ctx context.Context, req *models.CreateAssociationRequest) (*models.AssociationResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	s.logger.Info("Create: creating association name=%q", req.Name)

	// 1. Валидация
	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Хешируем пароль
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		s.logger.Warn("Create: failed to hash password: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.repo.Create(ctx, &domain.Association{Name: req.Name, CodeHash: hash})
	if err != nil {
		if errors.Is(err, associationRepo.ErrNameTaken) {
			s.logger.Warn("Create: association name=%q already exists", req.Name)
			return nil, ErrNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: association id=%d created", created.ID)
	resp := models.FromDomainAssociation(created)
	return &resp, nil
}

// Delete удаляет ассоциацию вместе со всеми её бронированиями
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteAssociationResponse, error) {
	s.logger.Info("Delete: deleting association id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	var deletedBookings int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.repo.CountBookings(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		deletedBookings = count
		return nil
	})

	if err != nil {
		if errors.Is(err, associationRepo.ErrAssociationNotFound) {
			s.logger.Warn("Delete: association id=%d not found", id)
			return nil, ErrAssociationNotFound
		}
		s.logger.Error("Delete: failed to delete association id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: association id=%d deleted with %d bookings", id, deletedBookings)
	return &models.DeleteAssociationResponse{ID: id, DeletedBookings: deletedBookings}, nil
}

// UpdatePassword заменяет пароль (код) ассоциации
func (s *Service) UpdatePassword(ctx context.Context, id int64, req *models.UpdatePasswordRequest) error {
	s.logger.Info("UpdatePassword: association id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("UpdatePassword: validation failed: %v", err)
		return err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		s.logger.Warn("UpdatePassword: failed to hash password: %v", err)
		return err
	}

	if err := s.repo.UpdateCodeHash(ctx, id, hash); err != nil {
		if errors.Is(err, associationRepo.ErrAssociationNotFound) {
			s.logger.Warn("UpdatePassword: association id=%d not found", id)
			return ErrAssociationNotFound
		}
		s.logger.Error("UpdatePassword: repository error: %v", err)
		return fmt.Errorf("%w: UpdatePassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePassword: password updated for association id=%d", id)
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, credential.ErrTooLong) {
		return "", fmt.Errorf("%w: exceeds 72 bytes", ErrPasswordTooLong)
	}
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}
	return hash, nil
}
