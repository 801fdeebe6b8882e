package main

import (
	"errors"

	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/MichalMitros/syntara-client/internal/search"
	"github.com/MichalMitros/syntara-client/internal/session"
)

// msgReportSent is shown after report request was accepted.
const msgReportSent = "Su reporte fue generado exitosamente, será enviado en un plazo de 3 días hábiles a los correos anexos"

var errorMessages = []struct {
	err error
	msg string
}{
	{err: report.ErrNoSelection, msg: "Selecciona al menos una empresa o producto para el reporte."},
	{err: report.ErrIncompleteRange, msg: "Por favor define el rango de fechas completo."},
	{err: report.ErrInvertedRange, msg: "La fecha de inicio no puede ser mayor a la fecha final."},
	{err: report.ErrFutureDate, msg: "No puedes seleccionar una fecha futura."},
	{err: report.ErrBeforeMinDate, msg: "No hay datos anteriores a la fecha mínima del reporte."},
	{err: report.ErrNoRecords, msg: "No se encontraron registros para este producto."},
	{err: report.ErrNoValidPrices, msg: "Se encontraron productos, pero ninguno tiene un precio válido."},
	{err: report.ErrEmptyProduct, msg: "Escribe un producto para analizar."},
	{err: search.ErrEmptyProduct, msg: "Escribe un producto."},
	{err: search.ErrInvalidQuantity, msg: "La cantidad debe ser mayor a 0."},
	{err: search.ErrMissingUnit, msg: "Selecciona una unidad."},
	{err: search.ErrLoginRequired, msg: "Inicia sesión para continuar."},
	{err: search.ErrInvalidPrice, msg: "Error: El producto tiene un precio inválido."},
	{err: search.ErrEmptyCompany, msg: "Por favor ingresa el nombre de tu empresa."},
	{err: session.ErrGuestQuotaUsed, msg: "Ya usaste tu búsqueda gratuita. Inicia sesión o regístrate para seguir buscando."},
	{err: errBadCredentials, msg: "Correo o contraseña incorrectos."},
	{err: api.ErrInvalidLogin, msg: "No pudimos iniciar sesión, intenta de nuevo."},
}

// errorMessage returns message describing err which can be shown to user.
func errorMessage(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return api.UserMessage(err, "")
}

// runError marks errors returned by command run functions.
type runError struct {
	err error
}

func (e runError) Error() string {
	return e.err.Error()
}

func (e runError) Unwrap() error {
	return e.err
}

// commandMessage returns message of error returned by run. Usage errors are printed unchanged.
func commandMessage(err error) string {
	var runErr runError
	if !errors.As(err, &runErr) {
		return err.Error()
	}
	return errorMessage(err)
}
