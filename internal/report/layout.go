package report

import "github.com/jung-kurt/gofpdf"

// Cursor - cursor de composición vertical sobre un PDF. Centraliza el
// control de salto de página: antes de dibujar un bloque se pide el alto
// necesario y, si no entra en lo que queda de la página, se abre una nueva.
type Cursor struct {
	pdf       *gofpdf.Fpdf
	bottom    float64 // espacio reservado al pie de cada página
	onNewPage func()
}

func NewCursor(pdf *gofpdf.Fpdf, bottom float64) *Cursor {
	return &Cursor{pdf: pdf, bottom: bottom}
}

// OnNewPage registra qué redibujar al abrir una página nueva (encabezado de
// tabla).
func (c *Cursor) OnNewPage(fn func()) {
	c.onNewPage = fn
}

// RequireSpace garantiza que haya al menos h de alto disponible antes del
// pie de página. Devuelve true si tuvo que abrir una página nueva.
func (c *Cursor) RequireSpace(h float64) bool {
	_, pageH := c.pdf.GetPageSize()
	if c.pdf.GetY()+h <= pageH-c.bottom {
		return false
	}
	c.pdf.AddPage()
	if c.onNewPage != nil {
		c.onNewPage()
	}
	return true
}
