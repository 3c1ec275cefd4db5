package personnelservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PersonnelService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PersonnelService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployee получает сотрудника по табельному коду
func (c *Client) GetEmployee(ctx context.Context, code string) (*Employee, error) {
	endpoint := fmt.Sprintf("%s/internal/employees/%s", c.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var employee Employee
	if err := json.NewDecoder(resp.Body).Decode(&employee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &employee, nil
}

// GetDepartment получает отдел по ID (включая код менеджера и состав)
func (c *Client) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	endpoint := fmt.Sprintf("%s/internal/departments/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrDepartmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var department Department
	if err := json.NewDecoder(resp.Body).Decode(&department); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &department, nil
}

// GetEmployeeWithGracefulDegradation получает сотрудника с graceful degradation.
// При недоступности PersonnelService возвращает ErrServiceDegraded - вызывающий
// может пропустить обогащение данными сотрудника вместо отказа всей операции.
// Бизнес-ошибка "не найден" пробрасывается как есть.
func (c *Client) GetEmployeeWithGracefulDegradation(ctx context.Context, code string) (*Employee, error) {
	employee, err := c.GetEmployee(ctx, code)
	if err != nil {
		if err == ErrEmployeeNotFound {
			return nil, err
		}

		c.log.Error("PersonnelService unavailable, applying graceful degradation for employee=%s: %v", code, err)
		return nil, fmt.Errorf("%w: employee=%s, error=%v", ErrServiceDegraded, code, err)
	}

	return employee, nil
}
