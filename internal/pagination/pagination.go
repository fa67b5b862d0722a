// Package pagination implementa el paginador de ventana fija que usan los
// listados: siempre muestra como máximo 7 posiciones, con puntos suspensivos
// cuando el total de páginas no entra completo.
package pagination

// Ellipsis marca un salto ("…") dentro de la ventana de páginas.
const Ellipsis = -1

// windowLimit - cantidad de páginas a partir de la cual se colapsa la ventana
const windowLimit = 7

// Window devuelve los números de página a renderizar para currentPage sobre
// totalPages. Devuelve nil cuando hay una sola página o ninguna: en ese caso
// el control no se muestra. Nunca repite números de página.
func Window(currentPage, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	if totalPages <= windowLimit {
		pages := make([]int, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	switch {
	case currentPage <= 3:
		return []int{1, 2, 3, 4, 5, Ellipsis, totalPages}
	case currentPage >= totalPages-2:
		return []int{1, Ellipsis, totalPages - 4, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	default:
		return []int{1, Ellipsis, currentPage - 1, currentPage, currentPage + 1, Ellipsis, totalPages}
	}
}

// Pages calcula el total de páginas para count elementos.
func Pages(count, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Clamp lleva page al rango [1, totalPages]. Con cero páginas devuelve 1
// para que la vista vacía siga siendo direccionable.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice devuelve los elementos visibles de la página pedida.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
