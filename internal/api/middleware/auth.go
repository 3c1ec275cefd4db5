// Package middleware HTTP middleware: аутентификация, request id, метрики
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
)

// EmployeeCodeHeader заголовок с кодом сотрудника, проставляется API gateway
const EmployeeCodeHeader = "X-Employee-Code"

type contextKey string

const employeeCodeKey contextKey = "employeeCode"

// GetEmployeeCode извлекает код сотрудника из контекста запроса
func GetEmployeeCode(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(employeeCodeKey).(string)
	return code, ok
}

// Auth проверяет наличие заголовка X-Employee-Code и кладет код
// сотрудника в контекст. Доверяем заголовку: аутентификацию выполняет
// gateway, сервис работает во внутренней сети.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(r.Header.Get(EmployeeCodeHeader))
		if code == "" {
			handlers.RespondUnauthorized(w, "отсутствует код сотрудника")
			return
		}

		ctx := context.WithValue(r.Context(), employeeCodeKey, code)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
