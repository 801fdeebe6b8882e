package api

import (
	"context"
	"errors"

	"github.com/MichalMitros/syntara-client/internal/decoder"
)

// User facing messages of transport and backend errors.
const (
	MsgSessionExpired = "Tu sesión expiró. Inicia sesión de nuevo."
	MsgPlanLimit      = "Alcanzaste el límite de tu plan. Mejora tu suscripción para continuar."
	MsgTimeout        = "El servidor tardó demasiado en responder."
	MsgMalformed      = "El servidor respondió con datos inválidos."
	MsgGeneric        = "Ocurrió un error al conectar con el servidor."
)

// UserMessage returns message describing err which can be shown to user.
// Backend provided message is preferred over fallback for unmapped statuses.
// Empty fallback means MsgGeneric.
func UserMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = MsgGeneric
	}

	var (
		statusErr    *StatusError
		malformedErr *decoder.MalformedResponseError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, ErrPlanLimit):
		return MsgPlanLimit
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.As(err, &malformedErr):
		return MsgMalformed
	case errors.As(err, &statusErr) && statusErr.Message != "":
		return statusErr.Message
	default:
		return fallback
	}
}
