package booking

import (
	"github.com/m04kA/SMC-MeetingRoomService/pkg/txmanager"
)

// DBExecutor интерфейс для выполнения запросов (пул соединений или транзакция)
type DBExecutor = txmanager.DBExecutor
