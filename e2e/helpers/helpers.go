package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	appJSON     = "application/json"
)

// Backend is fake Syntara backend serving login and competitor report endpoints.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// PrepareBackend starts fake backend which logs user in with token and returns observations
// from competitor report endpoint. Requests without the token are rejected after login.
func PrepareBackend(t *testing.T, user models.User, token string, observations []models.PriceObservation) *Backend {
	t.Helper()

	backend := &Backend{}
	backend.Server = httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		backend.mu.Lock()
		backend.requests = append(backend.requests, req.Method+" "+req.URL.Path)
		backend.mu.Unlock()

		switch req.URL.Path {
		case "/api/auth/login":
			writeJSON(t, wrt, http.StatusOK, api.LoginResponse{Token: token, User: &user})
		case "/api/reports/generate":
			if req.Header.Get("Authorization") != "Bearer "+token {
				writeJSON(t, wrt, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
				return
			}
			writeJSON(t, wrt, http.StatusOK, map[string]any{"data": observations})
		default:
			writeJSON(t, wrt, http.StatusNotFound, map[string]string{"message": "not found"})
		}
	}))

	t.Cleanup(func() {
		backend.Close()
	})

	return backend
}

// Requests returns method and path of received requests.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.requests...)
}

// APIURL returns base URL of backend API.
func (b *Backend) APIURL() string {
	return b.URL + "/api"
}

func writeJSON(t *testing.T, wrt http.ResponseWriter, status int, body any) {
	encoded, err := json.Marshal(body)
	require.NoError(t, err, "can't encode response")

	wrt.Header().Add(contentType, appJSON)
	wrt.WriteHeader(status)
	_, _ = wrt.Write(encoded)
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
