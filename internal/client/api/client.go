package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/pkg/api"
)

//go:generate moq -out credentials_mock.go . Credentials

// Credentials источник данных сессии для запросов
type Credentials interface {
	// SessionID идентификатор текущей сессии клиента
	SessionID() string
	// AccessToken текущий JWT (пусто до входа)
	AccessToken() string
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	credentials Credentials
	baseURL     string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, credentials Credentials) *Client {
	return &Client{
		baseURL:     baseURL,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки сессии при редиректе
				if len(via) > 0 {
					for _, h := range []string{"Authorization", api.HeaderSessionID} {
						if v := via[0].Header.Get(h); v != "" {
							req.Header.Set(h, v)
						}
					}
				}
				return nil
			},
		},
	}
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// FetchAllCases получает все активные кейсы заданного типа
func (c *Client) FetchAllCases(ctx context.Context, caseType models.CaseType) (models.CasesHash, error) {
	var resp []*models.Case
	path := "/api/v1/cases" + caseTypeQuery(caseType)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}
	return toHash(resp), nil
}

// FetchDeletedCases получает удаленные кейсы заданного типа
func (c *Client) FetchDeletedCases(ctx context.Context, caseType models.CaseType) (models.CasesHash, error) {
	var resp []*models.Case
	path := "/api/v1/cases/deleted" + caseTypeQuery(caseType)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch deleted cases: %w", err)
	}
	return toHash(resp), nil
}

// FetchCase получает кейс по ID
func (c *Client) FetchCase(ctx context.Context, id string) (*models.Case, error) {
	var resp models.Case
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/case/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch case %s: %w", id, err)
	}
	return &resp, nil
}

// PostCase создает кейс на сервере
func (c *Client) PostCase(ctx context.Context, cs *models.Case) (*models.Case, error) {
	var resp models.Case
	path := "/api/v1/case?" + versionQuery(cs.Version)
	if err := c.doRequest(ctx, http.MethodPost, path, cs, &resp); err != nil {
		return nil, fmt.Errorf("failed to create case %s: %w", cs.ID, err)
	}
	return &resp, nil
}

// PutCase обновляет кейс на сервере. expectedVersion версия, которую
// клиент считает актуальной; сервер отвечает 409, если его версия новее.
func (c *Client) PutCase(ctx context.Context, cs *models.Case, expectedVersion int64) (*models.Case, error) {
	var resp models.Case
	path := "/api/v1/case/" + url.PathEscape(cs.ID) + "?" + versionQuery(expectedVersion)
	if err := c.doRequest(ctx, http.MethodPut, path, cs, &resp); err != nil {
		return nil, fmt.Errorf("failed to update case %s: %w", cs.ID, err)
	}
	return &resp, nil
}

// DeleteCase мягко удаляет кейс на сервере
func (c *Client) DeleteCase(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/case/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete case %s: %w", id, err)
	}
	return nil
}

// RestoreCase восстанавливает удаленный кейс
func (c *Client) RestoreCase(ctx context.Context, id string) (*models.Case, error) {
	var resp models.Case
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/case/undelete/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to restore case %s: %w", id, err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.credentials != nil {
		if sessionID := c.credentials.SessionID(); sessionID != "" {
			req.Header.Set(api.HeaderSessionID, sessionID)
		}
		if token := c.credentials.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &RequestError{
			Method:      method,
			Path:        path,
			StatusCode:  resp.StatusCode,
			HasResponse: true,
			Err:         statusError(resp.StatusCode),
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			reqErr.ErrorMessage = errResp.ErrorMessage
		}
		return reqErr
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func caseTypeQuery(caseType models.CaseType) string {
	if caseType == "" {
		return ""
	}
	return "?" + url.Values{api.QueryCaseType: {string(caseType)}}.Encode()
}

func versionQuery(version int64) string {
	return url.Values{api.QueryCaseVersion: {strconv.FormatInt(version, 10)}}.Encode()
}

func toHash(cases []*models.Case) models.CasesHash {
	out := make(models.CasesHash, len(cases))
	for _, c := range cases {
		if c != nil && c.ID != "" {
			out[c.ID] = c
		}
	}
	return out
}
