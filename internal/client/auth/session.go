package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/casesync/internal/client/storage"
)

// ExpiredMessage ошибка, показываемая пользователю после сброса сессии сервером
const ExpiredMessage = "Your authentication expired.\nPlease log in."

// Session данные текущей сессии клиента.
// Идентификатор сессии генерируется один раз на процесс и не меняется при
// повторном входе: по нему клиент узнает эхо собственных записей.
type Session struct {
	auth storage.AuthData
	id   string
	err  string
	mu   sync.RWMutex
}

// NewSession создает сессию с новым идентификатором
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// SessionID возвращает идентификатор сессии
func (s *Session) SessionID() string {
	return s.id
}

// AccessToken возвращает текущий access token (пусто, если вход не выполнен)
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.AccessToken
}

// Username возвращает имя вошедшего пользователя
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Username
}

// IsAuthenticated сообщает, есть ли у сессии токен
func (s *Session) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// Authenticate устанавливает данные авторизации и сбрасывает ошибку
func (s *Session) Authenticate(data storage.AuthData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = data
	s.err = ""
}

// Reset удаляет данные авторизации; errMsg показывается пользователю
func (s *Session) Reset(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = storage.AuthData{}
	s.err = errMsg
}

// Err возвращает ошибку сессии
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
