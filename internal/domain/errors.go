package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce
// a status y envelope de error; ninguno es fatal para el proceso.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrLocationNotFound  = errors.New("ubicación no encontrada")
	ErrStockNotFound     = errors.New("no hay stock para el producto en la ubicación indicada")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrStoreUnavailable  = errors.New("base de datos no disponible")
)
