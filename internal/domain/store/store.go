// Package store define el contrato mínimo del almacén remoto: leer filas que cumplan
// un filtro, insertar, actualizar por filtro y suscribirse a cambios de una tabla.
package store

import (
	"context"
	"errors"
)

// Row fila sin tipar tal como la entrega el almacén. Se convierte a entidades en el borde (storerepo).
type Row map[string]any

// Clone copia superficial de la fila.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Filter igualdad por columna; un valor nil significa IS NULL.
type Filter map[string]any

// Order criterio de orden.
type Order struct {
	Column    string
	Ascending bool
}

// Query parámetros de Select. Columns vacío = todas las columnas.
type Query struct {
	Columns   []string
	Filter    Filter
	Order     *Order
	Limit     int
	ForUpdate bool
}

// EventMask tipo de evento de una suscripción.
type EventMask string

const (
	EventAll    EventMask = "*"
	EventInsert EventMask = "insert"
	EventUpdate EventMask = "update"
	EventDelete EventMask = "delete"
)

// Matches indica si un evento op pasa por la máscara.
func (m EventMask) Matches(op EventMask) bool {
	return m == EventAll || m == op
}

// ChangeEvent notificación de cambio. Row puede venir vacío según el driver.
type ChangeEvent struct {
	Table string    `json:"table"`
	Op    EventMask `json:"op"`
	ID    string    `json:"id,omitempty"`
	Row   Row       `json:"-"`
}

// Subscription handle de una suscripción activa.
type Subscription interface {
	Unsubscribe()
}

// Client operaciones del almacén remoto.
type Client interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Insert devuelve la fila persistida, con la clave primaria generada si no venía.
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, patch Row, filter Filter) (int64, error)
	Subscribe(ctx context.Context, table string, mask EventMask, fn func(ChangeEvent)) (Subscription, error)
}

// Tx cliente atado a una transacción. Lock toma un candado exclusivo hasta el fin de la tx.
type Tx interface {
	Client
	Lock(ctx context.Context, key string) error
}

// Transactor capacidad opcional de ejecutar varias operaciones de forma atómica.
// Si fn devuelve error la transacción se descarta.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

var (
	// ErrUnknownIdentifier tabla o columna fuera del esquema.
	ErrUnknownIdentifier = errors.New("store: unknown table or column")
	// ErrDuplicate clave primaria o columna única repetida. Todos los drivers lo envuelven.
	ErrDuplicate = errors.New("store: duplicate key")
)

// SubscriptionFunc adapta una función a Subscription.
type SubscriptionFunc func()

// Unsubscribe implementa Subscription.
func (f SubscriptionFunc) Unsubscribe() { f() }
