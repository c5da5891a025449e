package domain

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Default booking policy
const (
	DefaultDurationMinutes = 60
	DefaultBusinessStart   = "08:00"
	DefaultBusinessEnd     = "22:00"
)

// Name and credential limits
const (
	MinBookerNameLength      = 2
	MinAssociationNameLength = 2
	MaxAssociationNameLength = 100
	MinPasswordLength        = 6
	MaxPasswordLength        = 50
)

// History pagination
const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 500
)
