package auth

// LoginRequest вход по коду ассоциации или коду администратора
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResponse токен сессии и данные вошедшего
type LoginResponse struct {
	Token           string `json:"token"`
	ExpiresAt       string `json:"expiresAt"`
	Role            string `json:"role"`
	AssociationID   int64  `json:"associationId,omitempty"`
	AssociationName string `json:"associationName,omitempty"`
}
