package production

// PurposeFilter expresa el filtro tri-estado sobre el propósito de una etapa:
// no filtrar, filtrar las etapas sin propósito, o filtrar por un valor exacto.
// Se modela como valor explícito en lugar de sobrecargar un *string.
type PurposeFilter struct {
	filter  bool
	purpose *string
}

// PurposeAny no filtra por propósito: devuelve todas las etapas de la cadena.
func PurposeAny() PurposeFilter {
	return PurposeFilter{}
}

// PurposeNone filtra las etapas que no tienen propósito asignado.
func PurposeNone() PurposeFilter {
	return PurposeFilter{filter: true}
}

// PurposeExact filtra por un valor exacto de propósito.
func PurposeExact(p string) PurposeFilter {
	return PurposeFilter{filter: true, purpose: &p}
}

// Filters indica si el filtro está activo.
func (f PurposeFilter) Filters() bool { return f.filter }

// Value devuelve el propósito buscado; nil significa "sin propósito".
// Solo tiene sentido cuando Filters() es true.
func (f PurposeFilter) Value() *string { return f.purpose }

// Modos del filtro, para que las proyecciones puedan devolver el filtro
// aplicado sin ambigüedad (Any y None serían indistinguibles como *string).
const (
	ModeAny   = "any"
	ModeNone  = "none"
	ModeExact = "exact"
)

// Mode devuelve el modo del filtro: ModeAny, ModeNone o ModeExact.
func (f PurposeFilter) Mode() string {
	switch {
	case !f.filter:
		return ModeAny
	case f.purpose == nil:
		return ModeNone
	default:
		return ModeExact
	}
}

// Matches evalúa el filtro contra el propósito de una etapa.
func (f PurposeFilter) Matches(purpose *string) bool {
	if !f.filter {
		return true
	}
	if f.purpose == nil {
		return purpose == nil
	}
	return purpose != nil && *purpose == *f.purpose
}
