package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusvaldes/popup-api/internal/config"
	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/service"
)

type stubRegistrationService struct {
	formStatusFn func(ctx context.Context, eventID uint) (domain.FormStatus, error)
	registerFn   func(ctx context.Context, registration domain.Registration) (domain.Registration, error)
}

func (s *stubRegistrationService) FormStatus(ctx context.Context, eventID uint) (domain.FormStatus, error) {
	return s.formStatusFn(ctx, eventID)
}

func (s *stubRegistrationService) Register(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	return s.registerFn(ctx, registration)
}

func setupRegistrationRouter(svc RegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewRegistrationHandler(&config.EventsConfig{ActiveID: 1}, svc)
	router.GET("/api/v1/form-status", h.HandleGetFormStatus)
	router.POST("/api/v1/registrations", h.HandleSubmitRegistration)

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

const validRegistrationBody = `{
	"eventId": 1,
	"name": "  Juan ",
	"surname": "Pérez",
	"email": "Juan@Example.COM",
	"gender": "Masculino",
	"ticketQuantity": 2
}`

func TestHandleGetFormStatus(t *testing.T) {
	t.Run("returns the form status", func(t *testing.T) {
		svc := &stubRegistrationService{
			formStatusFn: func(_ context.Context, eventID uint) (domain.FormStatus, error) {
				assert.Equal(t, uint(1), eventID)
				return domain.FormStatus{Closed: false, MaxTickets: 450}, nil
			},
		}
		router := setupRegistrationRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/form-status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"closed":false,"maxTickets":450}`, w.Body.String())
	})

	t.Run("unknown active event is not found", func(t *testing.T) {
		svc := &stubRegistrationService{
			formStatusFn: func(_ context.Context, _ uint) (domain.FormStatus, error) {
				return domain.FormStatus{}, service.ErrEventNotFound
			},
		}
		router := setupRegistrationRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/form-status", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Evento no encontrado"}`, w.Body.String())
	})

	t.Run("database failure is an opaque internal error", func(t *testing.T) {
		svc := &stubRegistrationService{
			formStatusFn: func(_ context.Context, _ uint) (domain.FormStatus, error) {
				return domain.FormStatus{}, errors.New("connection refused")
			},
		}
		router := setupRegistrationRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/form-status", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Error interno del servidor"}`, w.Body.String())
	})
}

func TestHandleSubmitRegistration(t *testing.T) {
	t.Run("registers and echoes the sanitized payload", func(t *testing.T) {
		svc := &stubRegistrationService{
			registerFn: func(_ context.Context, registration domain.Registration) (domain.Registration, error) {
				assert.Equal(t, "Juan", registration.Name)
				assert.Equal(t, "juan@example.com", registration.Email)
				assert.Equal(t, "unknown", registration.IPAddress)
				registration.ID = 1
				return registration, nil
			},
		}
		router := setupRegistrationRouter(svc)

		w := postJSON(router, "/api/v1/registrations", validRegistrationBody)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "¡Inscripción exitosa!",
			"data": {
				"name": "Juan",
				"surname": "Pérez",
				"email": "juan@example.com",
				"gender": "Masculino",
				"ticketQuantity": 2
			}
		}`, w.Body.String())
	})

	t.Run("records the first forwarded address", func(t *testing.T) {
		svc := &stubRegistrationService{
			registerFn: func(_ context.Context, registration domain.Registration) (domain.Registration, error) {
				assert.Equal(t, "203.0.113.7", registration.IPAddress)
				return registration, nil
			},
		}
		router := setupRegistrationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(validRegistrationBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid input before touching the service", func(t *testing.T) {
		called := false
		svc := &stubRegistrationService{
			registerFn: func(_ context.Context, registration domain.Registration) (domain.Registration, error) {
				called = true
				return registration, nil
			},
		}
		router := setupRegistrationRouter(svc)

		bodies := map[string]string{
			"quantity 0":     `{"eventId":1,"name":"Juan","surname":"Pérez","email":"juan@example.com","gender":"Masculino","ticketQuantity":0}`,
			"quantity 3":     `{"eventId":1,"name":"Juan","surname":"Pérez","email":"juan@example.com","gender":"Masculino","ticketQuantity":3}`,
			"bad gender":     `{"eventId":1,"name":"Juan","surname":"Pérez","email":"juan@example.com","gender":"otro","ticketQuantity":1}`,
			"bad email":      `{"eventId":1,"name":"Juan","surname":"Pérez","email":"juan-example.com","gender":"Otro","ticketQuantity":1}`,
			"missing name":   `{"eventId":1,"surname":"Pérez","email":"juan@example.com","gender":"Otro","ticketQuantity":1}`,
			"non-integer":    `{"eventId":1,"name":"Juan","surname":"Pérez","email":"juan@example.com","gender":"Otro","ticketQuantity":1.5}`,
			"malformed json": `{"eventId":`,
		}

		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				w := postJSON(router, "/api/v1/registrations", body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}

		assert.False(t, called)
	})

	t.Run("maps domain rejections to distinct messages", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode int
			wantMsg  string
		}{
			{
				name:     "unknown event",
				err:      service.ErrEventNotFound,
				wantCode: http.StatusNotFound,
				wantMsg:  "Evento no encontrado",
			},
			{
				name:     "form closed",
				err:      service.ErrFormClosed,
				wantCode: http.StatusBadRequest,
				wantMsg:  "Lo sentimos, se alcanzó el límite de inscripciones",
			},
			{
				name:     "duplicate email",
				err:      service.ErrEmailAlreadyRegistered,
				wantCode: http.StatusBadRequest,
				wantMsg:  "Este email ya está registrado",
			},
			{
				name:     "ip quota",
				err:      &service.IPQuotaExceededError{Limit: 5},
				wantCode: http.StatusBadRequest,
				wantMsg:  "Se alcanzó el límite de 5 inscripciones por dirección IP",
			},
			{
				name:     "infrastructure failure",
				err:      errors.New("connection refused"),
				wantCode: http.StatusInternalServerError,
				wantMsg:  "Error interno del servidor",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := &stubRegistrationService{
					registerFn: func(_ context.Context, _ domain.Registration) (domain.Registration, error) {
						return domain.Registration{}, tc.err
					},
				}
				router := setupRegistrationRouter(svc)

				w := postJSON(router, "/api/v1/registrations", validRegistrationBody)

				require.Equal(t, tc.wantCode, w.Code)
				assert.Contains(t, w.Body.String(), tc.wantMsg)
			})
		}
	})
}
