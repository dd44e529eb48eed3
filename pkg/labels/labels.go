// Package labels normaliza etiquetas de talla, color y bodega que llegan de hojas de
// cálculo y exportaciones heredadas, para que "Ｍ", " M " y "M" agrupen juntas.
package labels

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize recorta espacios, pliega caracteres de ancho completo (Ｍ → M) y lleva
// el texto a NFC. No cambia mayúsculas: "M" y "m" siguen siendo tallas distintas.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(width.Fold.String(s))
}
