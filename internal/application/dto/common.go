package dto

// PageResponse metadatos de página en respuestas (paginación por número de página).
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de operaciones sin cuerpo propio; Message es el aviso mostrado al usuario.
type MessageResponse struct {
	Message string `json:"message"`
}
