package usecase

import (
	"path"
	"strings"
)

// ImageURL construye la URL pública de la imagen: base + basename de la referencia del cliente.
// No verifica que el archivo exista. Referencias vacías (o que no dejan nombre de archivo) dan nil.
// Las barras invertidas se tratan como separadores ("C:\fakepath\foto.jpg" → "foto.jpg").
func ImageURL(baseURL, ref string) *string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	name := path.Base(strings.ReplaceAll(ref, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return nil
	}
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u := baseURL + name
	return &u
}
