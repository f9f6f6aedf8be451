package constants

// OutcomeKind categorizes how the court ruled in the operative clause.
type OutcomeKind string

const (
	NegarProvimento    OutcomeKind = "negar_provimento"
	DarProvimento      OutcomeKind = "dar_provimento"
	JulgarImprocedente OutcomeKind = "julgar_improcedente"
	JulgarProcedente   OutcomeKind = "julgar_procedente"
	Prejudicado        OutcomeKind = "prejudicado"
	Extinto            OutcomeKind = "extinto"
)

// OutcomeCategory pairs an outcome kind with the phrasings that signal it.
// Phrasings are matched against the accent-stripped uppercase clause.
type OutcomeCategory struct {
	Kind     OutcomeKind
	Phrasing []string
}

// OutcomeTaxonomy is scanned in order; within a category the phrasings are
// tried in listed order and the first category with any hit wins.
var OutcomeTaxonomy = []OutcomeCategory{
	{NegarProvimento, []string{`NEGA[MR]? PROVIMENTO`, `NEGAR PROVIMENTO`, `NEGA-SE PROVIMENTO`}},
	{DarProvimento, []string{`DAR PROVIMENTO`, `DE[AU] PROVIMENTO`, `PROVIDO`, `ACOLHE( O| O?A)? RECURSO`}},
	{JulgarImprocedente, []string{`JULGAR(IM)?PROCEDENTE`, `IMPROCEDENTE`}},
	{JulgarProcedente, []string{`JULGAR PROCEDENTE`, `PROCEDENTE`}},
	{Prejudicado, []string{`PREJUDICAD`}},
	{Extinto, []string{`EXTINTO`, `EXTINGUIR`}},
}

// NegativeDispositions deny or dispose of the appeal or claim.
var NegativeDispositions = map[OutcomeKind]bool{
	NegarProvimento:    true,
	JulgarImprocedente: true,
	Prejudicado:        true,
	Extinto:            true,
}

// PositiveDispositions grant the appeal or claim.
var PositiveDispositions = map[OutcomeKind]bool{
	DarProvimento:    true,
	JulgarProcedente: true,
}

// Decision is the ruling's polarity with respect to the detected bank.
type Decision string

const (
	Favoravel     Decision = "favoravel"
	Contraria     Decision = "contraria"
	Indeterminado Decision = "indeterminado"
)
