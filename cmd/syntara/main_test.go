package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MichalMitros/syntara-client/cmd/syntara/config"
	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/MichalMitros/syntara-client/internal/platform/rabbitmq"
	"github.com/MichalMitros/syntara-client/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/MichalMitros/syntara-client/internal/search"
	"github.com/MichalMitros/syntara-client/internal/session"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:       "u1",
	Name:     "Tienda Ana",
	Lastname: "Gómez",
	Email:    "ana@tienda.co",
	Role:     "user",
}

// fakeNotices records broker calls and passes messages to handler from separate goroutine.
type fakeNotices struct {
	calls    []string
	messages func() [][]byte
}

func (n *fakeNotices) Bind(queue, _ string) error {
	n.calls = append(n.calls, "bind "+queue)
	return nil
}

func (n *fakeNotices) BindPrivate(string) (string, error) {
	n.calls = append(n.calls, "bind private")
	return "amq.gen-1", nil
}

func (n *fakeNotices) Consume(ctx context.Context, queue string, h rabbitmq.HandlerFunc) (<-chan error, error) {
	n.calls = append(n.calls, "consume "+queue)
	messages := n.messages()

	errs := make(chan error, len(messages))
	go func() {
		defer close(errs)
		for _, msg := range messages {
			if err := h(ctx, msg); err != nil {
				errs <- err
			}
		}
	}()
	return errs, nil
}

// newTestApp returns app calling test server with handler and keeping session in memory.
func newTestApp(t *testing.T, handler http.HandlerFunc) (*app, *bytes.Buffer, *storagetesting.Memory) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	out := &bytes.Buffer{}
	mem := storagetesting.NewMemory(nil)

	a := &app{
		cfg: config.Config{
			APIURL: srv.URL + "/api",
			Reports: config.Reports{
				CompetitorMinDate:  report.CompetitorMinDate,
				DistributorMinDate: report.DistributorMinDate,
			},
		},
		logger: &logger,
		out:    out,
	}
	require.NoError(t, a.assemble(context.TODO(), mem, srv.Client()), "should assemble app")
	t.Cleanup(func() { _ = a.Close() })

	return a, out, mem
}

func writeJSON(wrt http.ResponseWriter, status int, body string) {
	wrt.Header().Add("Content-Type", "application/json")
	wrt.WriteHeader(status)
	_, _ = wrt.Write([]byte(body))
}

func TestUnitRunLoginWhoami(t *testing.T) {
	a, out, mem := newTestApp(t, func(wrt http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/auth/login":
			body, _ := json.Marshal(api.LoginResponse{Token: "tok-1", User: &testUser})
			writeJSON(wrt, http.StatusOK, string(body))
		case "/api/subscriptions/my-plan":
			assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"), "should send stored token")
			writeJSON(wrt, http.StatusOK, `{"type":"Pro"}`)
		default:
			t.Errorf("unexpected request to %s", req.URL.Path)
		}
	})

	err := run(context.TODO(), a, []string{"login", "--email", testUser.Email, "--password", "secret"})
	require.NoError(t, err, "login shouldn't return any error")

	err = run(context.TODO(), a, []string{"whoami"})
	require.NoError(t, err, "whoami shouldn't return any error")

	assert.Contains(t, out.String(), "Bienvenido, Tienda Ana.", "should greet user")
	assert.Contains(t, out.String(), "Tienda Ana Gómez <ana@tienda.co>", "should print user")
	assert.Contains(t, out.String(), "Plan: Pro", "should print plan")
	assert.Equal(t, "tok-1", mem.Snapshot()[session.TokenKey], "should persist token")
}

func TestUnitRunLoginRejected(t *testing.T) {
	a, _, _ := newTestApp(t, func(wrt http.ResponseWriter, _ *http.Request) {
		writeJSON(wrt, http.StatusUnauthorized, `{"message":"Credenciales incorrectas"}`)
	})

	err := run(context.TODO(), a, []string{"login", "--email", "x@y.co", "--password", "bad"})

	require.ErrorIs(t, err, errBadCredentials, "should return bad credentials error")
	assert.Equal(t, "Correo o contraseña incorrectos.", errorMessage(err), "should render credentials message")
	assert.False(t, a.store.IsLoggedIn(), "shouldn't log in")
}

func TestUnitRunLoginRejectedKeepsSession(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"wrong password": {
			status: http.StatusUnauthorized,
			body:   `{"message":"Credenciales incorrectas"}`,
		},
		"token without user": {
			status: http.StatusOK,
			body:   `{"token":"tok-2"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, _, mem := newTestApp(t, func(wrt http.ResponseWriter, _ *http.Request) {
				writeJSON(wrt, tt.status, tt.body)
			})
			require.NoError(t, a.store.Login(context.TODO(), testUser, "tok-1"))

			err := run(context.TODO(), a, []string{"login", "--email", "otra@tienda.co", "--password", "bad"})

			require.Error(t, err, "should reject login")
			assert.True(t, a.store.IsLoggedIn(), "should keep current session")
			assert.Equal(t, "tok-1", mem.Snapshot()[session.TokenKey], "should keep stored token")
		})
	}
}

func TestUnitRunGuestSearch(t *testing.T) {
	a, out, _ := newTestApp(t, func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/search", req.URL.Path, "should call search endpoint")
		assert.Equal(t, "arroz diana", req.URL.Query().Get("product"), "should send joined product")
		assert.Equal(t, "kilogramos", req.URL.Query().Get("unit"), "should send unit")
		writeJSON(wrt, http.StatusOK, `{"data":{"results":[
			{"id":"a","product":"Arroz Diana 1kg","store":"Jumbo","price":5200},
			{"id":"b","product":"Arroz Diana 1kg","store":"Éxito","price":4100}
		]}}`)
	})

	args := []string{"search", "arroz", "diana", "--quantity", "2", "--unit", "kilogramos"}

	err := run(context.TODO(), a, args)
	require.NoError(t, err, "first guest search should pass")

	printed := out.String()
	assert.Less(t, strings.Index(printed, "Éxito"), strings.Index(printed, "Jumbo"), "should print cheapest first")
	assert.Contains(t, printed, "kg", "should print measure label")

	err = run(context.TODO(), a, args)
	require.ErrorIs(t, err, session.ErrGuestQuotaUsed, "second guest search should be rejected")

	out.Reset()
	require.NoError(t, run(context.TODO(), a, []string{"whoami"}))
	assert.Contains(t, out.String(), "Búsquedas gratuitas usadas: 1", "should print used quota")
}

func TestUnitRunSessionExpired(t *testing.T) {
	a, _, mem := newTestApp(t, func(wrt http.ResponseWriter, _ *http.Request) {
		writeJSON(wrt, http.StatusUnauthorized, `{"message":"jwt expired"}`)
	})
	require.NoError(t, a.store.Login(context.TODO(), testUser, "tok-1"))

	err := run(context.TODO(), a, []string{"cart"})

	require.ErrorIs(t, err, api.ErrSessionExpired, "should return session expired")
	assert.Equal(t, api.MsgSessionExpired, errorMessage(err), "should render session expired message")
	assert.False(t, a.store.IsLoggedIn(), "should drop expired session")
	assert.NotContains(t, mem.Snapshot(), session.TokenKey, "should forget stored token")
}

func TestUnitRunCartAddRequiresLogin(t *testing.T) {
	a, _, _ := newTestApp(t, func(_ http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected request to %s", req.URL.Path)
	})

	err := run(context.TODO(), a, []string{"cart", "add", "--product", "Arroz", "--store", "Jumbo", "--price", "4100"})

	require.ErrorIs(t, err, search.ErrLoginRequired, "should require login")
}

func competitorBackend(t *testing.T) http.HandlerFunc {
	return func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/reports/generate", req.URL.Path, "should call report endpoint")
		writeJSON(wrt, http.StatusOK, `{"data":[
			{"product":"arroz","store":"Tienda Ana","price":4000,"date":"2025-01-10"},
			{"product":"arroz","store":"olimpica.com","price":4400,"date":"2025-01-10"},
			{"product":"arroz","store":"Éxito","price":3800,"date":"2025-01-11"}
		]}`)
	}
}

func TestUnitRunCompetitorReport(t *testing.T) {
	a, out, _ := newTestApp(t, competitorBackend(t))
	require.NoError(t, a.store.Login(context.TODO(), testUser, "tok-1"))

	sender := mocks.NewSender(t)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg []byte) bool {
		var cmd commander.ReportCommand
		if err := json.Unmarshal(msg, &cmd); err != nil {
			return false
		}
		return cmd.Kind == commander.KindCompetitor &&
			cmd.Subject == "arroz" &&
			assert.ObjectsAreEqual([]string{"Olímpica"}, cmd.Items) &&
			cmd.DateStart == "2025-01-01" &&
			cmd.DateEnd == "2025-01-31" &&
			cmd.Format == report.CompetitorFormat &&
			cmd.ID != ""
	})).Return(nil).Once()
	a.sender = sender

	err := run(context.TODO(), a, []string{
		"report", "competitor", "arroz",
		"--select", "olimpica", "--select", "unknown",
		"--from", "2025-01-01", "--to", "2025-01-31",
	})

	require.NoError(t, err, "shouldn't return any error")
	printed := out.String()
	assert.Contains(t, printed, "Análisis de competencia: arroz", "should print preview")
	assert.Contains(t, printed, "Competidores disponibles: Olímpica, Éxito", "should list competitors")
	assert.Contains(t, printed, msgReportSent, "should confirm submission")
}

func TestUnitRunCompetitorReportInvalidRequest(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"no selection": {
			args:    []string{"--from", "2025-01-01", "--to", "2025-01-31"},
			wantErr: report.ErrNoSelection,
		},
		"incomplete range": {
			args:    []string{"--select", "Éxito", "--from", "2025-01-01"},
			wantErr: report.ErrIncompleteRange,
		},
		"inverted range": {
			args:    []string{"--select", "Éxito", "--from", "2025-02-01", "--to", "2025-01-01"},
			wantErr: report.ErrInvertedRange,
		},
		"before min date": {
			args:    []string{"--select", "Éxito", "--from", "2024-01-01", "--to", "2025-01-01"},
			wantErr: report.ErrBeforeMinDate,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, _, _ := newTestApp(t, competitorBackend(t))
			a.sender = mocks.NewSender(t)

			err := run(context.TODO(), a, append([]string{"report", "competitor", "arroz"}, tt.args...))

			require.ErrorIs(t, err, tt.wantErr, "should return validation error")
		})
	}
}

func TestUnitRunDistributorReport(t *testing.T) {
	a, out, _ := newTestApp(t, func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/reports/distributor-intelligence", req.URL.Path, "should call distributor endpoint")
		writeJSON(wrt, http.StatusOK, `{"analysis":"Demanda estable","data":[
			{"product":"ARROZ DIANA","searches":60,"demandScore":55,"priceStats":{"min":3000,"max":5000,"avg":4000}},
			{"product":"aceite","searches":3,"demandScore":2,"priceStats":{"min":0,"max":0,"avg":0}}
		]}`)
	})

	err := run(context.TODO(), a, []string{"report", "distributor"})

	require.NoError(t, err, "shouldn't return any error")
	printed := out.String()
	assert.Contains(t, printed, "Inteligencia de distribución: "+report.DefaultStoreName, "guest should use default store")
	assert.Contains(t, printed, "Muy Alta", "should print demand level")
	assert.NotContains(t, printed, "aceite", "should skip products without price")
}

func TestUnitRunReportWatch(t *testing.T) {
	a, out, _ := newTestApp(t, func(_ http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected request to %s", req.URL.Path)
	})
	notices := &fakeNotices{messages: func() [][]byte {
		return [][]byte{
			[]byte(`{"requestId":"r2","status":"queued"}`),
			[]byte(`{"requestId":"r1","status":"queued"}`),
			[]byte(`{"requestId":"r1","status":"delivered","url":"https://files.syntara.co/r1.pdf"}`),
		}
	}}
	a.notices = notices

	err := run(context.TODO(), a, []string{"report", "watch", "--request", "r1"})

	require.NoError(t, err, "shouldn't return any error")
	printed := out.String()
	assert.Contains(t, printed, "[queued] r1", "should print queued notice")
	assert.Contains(t, printed, "[delivered] r1 https://files.syntara.co/r1.pdf", "should print delivered notice")
	assert.NotContains(t, printed, "r2", "should skip notices of other requests")
	assert.Equal(t, []string{"bind private", "consume amq.gen-1"}, notices.calls, "filtered watch shouldn't consume shared queue")
}

func TestUnitRunCompetitorReportWait(t *testing.T) {
	a, out, _ := newTestApp(t, competitorBackend(t))
	require.NoError(t, a.store.Login(context.TODO(), testUser, "tok-1"))
	a.cfg.RabbitMQ.Queue = "syntara-client.notices"

	var sentID string
	notices := &fakeNotices{}
	notices.messages = func() [][]byte {
		return [][]byte{
			[]byte(`{"requestId":"other-user","status":"queued"}`),
			[]byte(fmt.Sprintf(`{"requestId":%q,"status":"queued"}`, sentID)),
			[]byte(`{"requestId":"other-user","status":"delivered","url":"https://files.syntara.co/other-user.pdf"}`),
			[]byte(fmt.Sprintf(`{"requestId":%q,"status":"delivered","url":"https://files.syntara.co/own.pdf"}`, sentID)),
		}
	}
	a.notices = notices

	sender := mocks.NewSender(t)
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		var cmd commander.ReportCommand
		require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &cmd))
		sentID = cmd.ID
		notices.calls = append(notices.calls, "send")
	}).Return(nil).Once()
	a.sender = sender

	err := run(context.TODO(), a, []string{
		"report", "competitor", "arroz",
		"--select", "Éxito",
		"--from", "2025-01-01", "--to", "2025-01-31",
		"--wait",
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, []string{"bind private", "send", "consume amq.gen-1"}, notices.calls, "should bind private queue before submitting")
	printed := out.String()
	assert.Contains(t, printed, "[queued] "+sentID, "should print own queued notice")
	assert.Contains(t, printed, "[delivered] "+sentID+" https://files.syntara.co/own.pdf", "should print own delivery")
	assert.NotContains(t, printed, "other-user", "should skip notices of other requests")
}

func TestUnitNoticeQueue(t *testing.T) {
	tests := map[string]struct {
		private   bool
		wantQueue string
		wantCalls []string
	}{
		"private": {
			private:   true,
			wantQueue: "amq.gen-1",
			wantCalls: []string{"bind private"},
		},
		"shared": {
			wantQueue: "syntara-client.notices",
			wantCalls: []string{"bind syntara-client.notices"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, _, _ := newTestApp(t, func(_ http.ResponseWriter, req *http.Request) {
				t.Errorf("unexpected request to %s", req.URL.Path)
			})
			a.cfg.RabbitMQ.Queue = "syntara-client.notices"
			notices := &fakeNotices{}
			a.notices = notices

			consumer, queue, err := a.noticeQueue(tt.private)

			require.NoError(t, err, "shouldn't return any error")
			assert.Same(t, notices, consumer, "should consume from notice source")
			assert.Equal(t, tt.wantQueue, queue, "should return bound queue")
			assert.Equal(t, tt.wantCalls, notices.calls, "should bind correct queue")
		})
	}
}

func TestUnitRequestFlagsConfig(t *testing.T) {
	selection := map[string]bool{"Olímpica": false, "Éxito": false, "Tiendas D1": false}
	flags := requestFlags{
		selected: []string{"EXITO", "tiendas d1", "Carulla"},
		from:     "2025-01-01",
		to:       "2025-01-31",
	}

	cfg, unknown := flags.config(selection)

	assert.Equal(t, map[string]bool{"Olímpica": false, "Éxito": true, "Tiendas D1": true}, cfg.Selected, "should mark matched names")
	assert.Equal(t, []string{"Carulla"}, unknown, "should return unknown names")
	assert.False(t, selection["Éxito"], "shouldn't modify preview selection")
	assert.Equal(t, "2025-01-01", cfg.DateStart)
	assert.Equal(t, "2025-01-31", cfg.DateEnd)
}

func TestUnitCommandMessage(t *testing.T) {
	a, _, _ := newTestApp(t, func(wrt http.ResponseWriter, _ *http.Request) {
		writeJSON(wrt, http.StatusForbidden, `{"error":"Plan Pro requerido"}`)
	})
	require.NoError(t, a.store.Login(context.TODO(), testUser, "tok-1"))

	usageErr := run(context.TODO(), a, []string{"login", "--email", "x@y.co"})
	require.Error(t, usageErr, "should reject missing flag")
	assert.Contains(t, commandMessage(usageErr), "password", "should print usage error unchanged")

	runErr := run(context.TODO(), a, []string{"wholesale", "arroz"})
	require.ErrorIs(t, runErr, api.ErrPlanLimit, "should return plan limit")
	assert.Equal(t, api.MsgPlanLimit, commandMessage(runErr), "should map run error")
}

func TestUnitErrorMessage(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"validation": {
			err:  report.ErrFutureDate,
			want: "No puedes seleccionar una fecha futura.",
		},
		"wrapped search error": {
			err:  fmt.Errorf("can't search: %w", search.ErrInvalidQuantity),
			want: "La cantidad debe ser mayor a 0.",
		},
		"plan limit": {
			err:  &api.StatusError{StatusCode: http.StatusForbidden},
			want: api.MsgPlanLimit,
		},
		"backend message": {
			err:  &api.StatusError{StatusCode: http.StatusBadRequest, Message: "Producto inválido"},
			want: "Producto inválido",
		},
		"unknown": {
			err:  assert.AnError,
			want: api.MsgGeneric,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}
