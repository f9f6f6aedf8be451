package constants

// RulingTypes lists the known ruling-type headings in priority order: the
// longer, more specific phrases come before the phrases they contain
// ("AGRAVO EM RECURSO ESPECIAL" must win over "RECURSO ESPECIAL").
var RulingTypes = []string{
	"AGRAVO EM RECURSO ESPECIAL",
	"RECURSO ESPECIAL",
	"AGRAVO INTERNO",
	"AGRAVO DE INSTRUMENTO",
	"EMBARGOS DE DECLARAÇÃO",
}
