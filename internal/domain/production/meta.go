package production

// NormalizeMeta garantiza que la metadata de un evento sea siempre un mapa
// concreto: nil o cualquier valor que no sea un objeto JSON se convierte en un
// mapa vacío, para que los consumidores nunca tengan que chequear null.
func NormalizeMeta(v any) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	if m, ok := v.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}
