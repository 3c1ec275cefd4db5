package personnelservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("personnelservice: employee not found")

	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("personnelservice: department not found")

	// ErrInvalidResponse возвращается при некорректном ответе PersonnelService
	ErrInvalidResponse = errors.New("personnelservice: invalid response")

	// ErrServiceDegraded возвращается при недоступности PersonnelService,
	// когда вызывающий может продолжить работу без этих данных
	ErrServiceDegraded = errors.New("personnelservice: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("personnelservice: internal error")
)
