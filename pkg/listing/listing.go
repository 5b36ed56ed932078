// Package listing funciones puras de presentación de listas: paginación, filtros y conteos.
package listing

// Tamaños de página por pantalla.
const (
	RestockPageSize  = 3
	OrderPageSize    = 3
	RepairPageSize   = 3
	DispatchPageSize = 6
)

// Paginate devuelve items[(page-1)*size : page*size]. Página 1-indexada; fuera de rango => vacío.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page <= 0 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages ceil(n / pageSize). Una lista vacía tiene 0 páginas.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Tally cuenta los elementos que cumplen pred.
func Tally[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Filter devuelve los elementos que cumplen pred, en el mismo orden.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Page una página de resultados con sus metadatos.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPage pagina items y arma los metadatos.
func NewPage[T any](items []T, pageSize, page int) Page[T] {
	return Page[T]{
		Items:      Paginate(items, pageSize, page),
		Page:       page,
		PageSize:   pageSize,
		Total:      len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}
}
