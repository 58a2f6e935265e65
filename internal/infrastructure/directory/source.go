// Package directory adapts the external HR web service into employee.Directory.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 32 << 20
)

var _ employee.Source = (*HTTPSource)(nil)

// HTTPSource calls the HR GetEmployeeList endpoint.
type HTTPSource struct {
	url        string
	userID     string
	password   string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPSource(url, userID, password string, timeout time.Duration, log logger.Interface) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		url:        url,
		userID:     userID,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type fetchRequest struct {
	UserID   string `json:"arg_UserId"`
	Password string `json:"arg_Pass"`
}

// hrEnvelope is the payload inside the ASMX "d" wrapper.
type hrEnvelope struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
}

func (s *HTTPSource) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	body, err := json.Marshal(fetchRequest{UserID: s.userID, Password: s.password})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	s.logger.Debugw("fetching employees from HR system", "url", s.url)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	employees, err := decodeEmployees(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("fetched employees from HR system", "count", len(employees))
	return employees, nil
}

// decodeEmployees accepts either {"d": "<json string>"}, {"d": {...}} or the bare envelope.
// Only the first JSON value is read; the service appends trailing bytes on some hosts.
func decodeEmployees(raw []byte) ([]employee.Employee, error) {
	var outer map[string]json.RawMessage
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&outer); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	payload := raw
	if d, ok := outer["d"]; ok {
		payload = d
		var inner string
		if err := json.Unmarshal(d, &inner); err == nil {
			payload = []byte(inner)
		}
	}

	var env hrEnvelope
	if err := json.NewDecoder(bytes.NewReader(payload)).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode employee envelope: %w", err)
	}
	if !env.Success || env.Data == nil {
		return nil, fmt.Errorf("HR system reported failure")
	}

	employees := make([]employee.Employee, 0, len(env.Data))
	for _, item := range env.Data {
		var rec map[string]any
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("decode employee record: %w", err)
		}
		employees = append(employees, toEmployee(rec))
	}
	return employees, nil
}

func toEmployee(rec map[string]any) employee.Employee {
	get := func(key, fallback string) string {
		v, ok := rec[key]
		if !ok || v == nil {
			return fallback
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}

	id := get("employee_id", "N/A")
	return employee.Employee{
		ID:             get("id", ""),
		EmployeeID:     id,
		Name:           get("employee_name", "N/A"),
		Department:     get("employee_department", ""),
		Position:       get("employee_position", ""),
		Status:         get("employee_status", "Active"),
		Type:           get("employee_type", "Worker"),
		Gender:         get("employee_gender", ""),
		BirthDate:      get("employee_birth_date", ""),
		OldID:          get("employee_old_id", ""),
		JoinDate:       get("employee_join_date", ""),
		LeftDate:       get("employee_left_date", ""),
		ContractType:   get("contract_type", ""),
		ContractID:     get("contract_id", ""),
		ContractBegin:  get("contract_begin", ""),
		ContractEnd:    get("contract_end", ""),
		MaternityType:  get("maternity_type", ""),
		MaternityBegin: get("maternity_begin", ""),
		MaternityEnd:   get("maternity_end", ""),
		Image:          "/images/" + get("employee_id", "") + ".png",
	}
}
