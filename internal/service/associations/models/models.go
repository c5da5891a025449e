package models

import (
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// Request модели

// CreateAssociationRequest запрос на создание ассоциации
type CreateAssociationRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// UpdatePasswordRequest запрос на смену пароля ассоциации
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// Response модели

// AssociationResponse ассоциация без хеша кода
type AssociationResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BookingCount int    `json:"bookingCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// DeleteAssociationResponse итог удаления ассоциации
type DeleteAssociationResponse struct {
	ID              int64 `json:"id"`
	DeletedBookings int64 `json:"deletedBookings"`
}

// FromDomainAssociation конвертирует доменную ассоциацию в ответ
func FromDomainAssociation(a *domain.Association) AssociationResponse {
	return AssociationResponse{
		ID:           a.ID,
		Name:         a.Name,
		BookingCount: a.BookingCount,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
