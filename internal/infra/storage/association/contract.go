package association

import (
	"github.com/m04kA/RoomBookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
