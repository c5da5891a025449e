package association

import "errors"

var (
	// ErrAssociationNotFound возвращается, когда ассоциация не найдена
	ErrAssociationNotFound = errors.New("association.repository: association not found")

	// ErrNameTaken возвращается при попытке создать ассоциацию с существующим именем
	ErrNameTaken = errors.New("association.repository: association name already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("association.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("association.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("association.repository: failed to scan row")
)
