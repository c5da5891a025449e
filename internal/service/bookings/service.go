package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/RoomBookingService/pkg/ptr"
)

// Service сервис чтения бронирований: календарь, история, комнаты
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// location используется при разборе дат из запросов.
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		location:    location,
		logger:      logger,
	}
}

// GetCalendar возвращает бронирования за календарный месяц, опционально для одной комнаты
func (s *Service) GetCalendar(ctx context.Context, req *models.CalendarRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCalendar: month=%s, room=%d", req.Month, ptr.Value(req.RoomID))

	month, err := time.ParseInLocation(domain.MonthFormat, req.Month, s.location)
	if err != nil {
		s.logger.Warn("GetCalendar: invalid month %q: %v", req.Month, err)
		return nil, ErrInvalidMonth
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		s.logger.Warn("GetCalendar: invalid room id=%d", *req.RoomID)
		return nil, fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	filter := domain.CalendarFilter{
		FromDate: month,
		ToDate:   month.AddDate(0, 1, -1),
		RoomID:   req.RoomID,
	}

	bookings, err := s.bookingRepo.ListForCalendar(ctx, filter)
	if err != nil {
		s.logger.Error("GetCalendar: repository error for month=%s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendar: fetched %d bookings for month=%s", len(bookings), req.Month)
	return &models.BookingListResponse{Bookings: models.FromDomainBookingList(bookings)}, nil
}

// GetHistory возвращает историю бронирований постранично, сначала новые.
// Обычный пользователь видит только бронирования своей ассоциации.
func (s *Service) GetHistory(ctx context.Context, req *models.HistoryRequest) (*models.HistoryResponse, error) {
	s.logger.Info("GetHistory: role=%s, association=%d, filter=%d, limit=%d, offset=%d",
		req.Role, req.RequesterAssociationID, ptr.Value(req.AssociationID), req.Limit, req.Offset)

	filter, err := s.historyFilter(req)
	if err != nil {
		s.logger.Warn("GetHistory: invalid request: %v", err)
		return nil, err
	}

	var (
		total    int
		bookings []*domain.Booking
	)

	// total и страница читаются из одного снимка
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if total, err = s.bookingRepo.CountHistory(txCtx, filter); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		if bookings, err = s.bookingRepo.History(txCtx, filter); err != nil {
			return fmt.Errorf("page: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHistory: fetched %d of %d bookings", len(bookings), total)

	return &models.HistoryResponse{
		Bookings: models.FromDomainBookingList(bookings),
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		HasMore:  filter.Offset+len(bookings) < total,
	}, nil
}

// ListRooms возвращает все комнаты
func (s *Service) ListRooms(ctx context.Context) ([]models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRooms(rooms), nil
}

func (s *Service) historyFilter(req *models.HistoryRequest) (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	// Пагинация
	switch {
	case filter.Limit <= 0:
		filter.Limit = domain.DefaultHistoryLimit
	case filter.Limit > domain.MaxHistoryLimit:
		filter.Limit = domain.MaxHistoryLimit
	}
	if filter.Offset < 0 {
		return filter, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}

	// Область видимости
	if domain.Role(req.Role) == domain.RoleAdmin {
		if req.AssociationID != nil && *req.AssociationID <= 0 {
			return filter, fmt.Errorf("%w: associationId must be positive", ErrInvalidInput)
		}
		filter.AssociationID = req.AssociationID
	} else {
		if req.RequesterAssociationID <= 0 {
			return filter, fmt.Errorf("%w: requester has no association", ErrInvalidInput)
		}
		own := req.RequesterAssociationID
		filter.AssociationID = &own
	}

	// Период
	var err error
	if filter.FromDate, err = s.parseOptionalDate(req.FromDate); err != nil {
		return filter, fmt.Errorf("%w: fromDate: %v", ErrInvalidInput, err)
	}
	if filter.ToDate, err = s.parseOptionalDate(req.ToDate); err != nil {
		return filter, fmt.Errorf("%w: toDate: %v", ErrInvalidInput, err)
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return filter, ErrInvalidTimeRange
	}

	return filter, nil
}

func (s *Service) parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.ParseInLocation(domain.DateFormat, *value, s.location)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
