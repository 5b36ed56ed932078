package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrValidation valor de negocio rechazado (ej. cantidad de reposición no numérica).
	ErrValidation = errors.New("validación fallida")
	// ErrRemoteWrite el almacén rechazó una escritura (restricción, conectividad).
	ErrRemoteWrite = errors.New("escritura rechazada por el almacén")
	// ErrReconciliation el asiento contable quedó registrado pero la solicitud no cambió de estado.
	ErrReconciliation = errors.New("asiento registrado sin aprobación: requiere conciliación")
	// ErrAlreadyProcessed la solicitud ya fue aprobada o rechazada.
	ErrAlreadyProcessed = errors.New("la solicitud ya fue procesada")
)
