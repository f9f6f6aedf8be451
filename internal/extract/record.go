// Package extract implements the acórdão metadata extraction pipeline: a set
// of pattern-matching heuristics over raw ruling text plus a rule-based
// classifier that infers the decision's polarity for the detected bank.
// Every extractor is a pure function over the document text; missing fields
// degrade to nil, never to an error.
package extract

import (
	"strings"

	"github.com/cferraz/acordaos-tracker/constants"
)

// Record is the fixed-schema output for one ruling document. Pointer fields
// distinguish "not found" (nil) from a found value; every key is present in
// the JSON form regardless of what was extracted.
type Record struct {
	Processo         *string `json:"processo"`
	TipoProcesso     *string `json:"tipo_processo"`
	DataJulgamento   *string `json:"data_julgamento"`
	Estado           *string `json:"estado"`
	Agravante        *string `json:"AGRAVANTE"`
	Agravado         *string `json:"AGRAVADO"`
	Recorrente       *string `json:"RECORRENTE"`
	Recorrido        *string `json:"RECORRIDO"`
	Embargante       *string `json:"EMBARGANTE"`
	Embargado        *string `json:"EMBARGADO"`
	Autor            *string `json:"AUTOR"`
	Reu              *string `json:"REU"`
	Interessado      *string `json:"INTERESSADO"`
	Banco            *string `json:"banco"`
	DecisaoParaBanco *string `json:"decisao_para_banco"`
}

// columns fixes the tabular schema and its order across all documents.
var columns = []string{
	"processo",
	"tipo_processo",
	"data_julgamento",
	"estado",
	"AGRAVANTE",
	"AGRAVADO",
	"RECORRENTE",
	"RECORRIDO",
	"EMBARGANTE",
	"EMBARGADO",
	"AUTOR",
	"REU",
	"INTERESSADO",
	"banco",
	"decisao_para_banco",
}

// Columns returns the record's column names in export order.
func Columns() []string {
	return append([]string(nil), columns...)
}

// Values returns one cell per column, empty string for absent fields.
func (r *Record) Values() []string {
	fields := []*string{
		r.Processo, r.TipoProcesso, r.DataJulgamento, r.Estado,
		r.Agravante, r.Agravado, r.Recorrente, r.Recorrido,
		r.Embargante, r.Embargado, r.Autor, r.Reu, r.Interessado,
		r.Banco, r.DecisaoParaBanco,
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		if f != nil {
			out[i] = *f
		}
	}
	return out
}

func (r *Record) roleField(role constants.Role) **string {
	switch role {
	case constants.Agravante:
		return &r.Agravante
	case constants.Agravado:
		return &r.Agravado
	case constants.Recorrente:
		return &r.Recorrente
	case constants.Recorrido:
		return &r.Recorrido
	case constants.Embargante:
		return &r.Embargante
	case constants.Embargado:
		return &r.Embargado
	case constants.Autor:
		return &r.Autor
	case constants.Reu:
		return &r.Reu
	case constants.Interessado:
		return &r.Interessado
	}
	return nil
}

// SetRole stores the flattened party names for a procedural role.
func (r *Record) SetRole(role constants.Role, names string) {
	if f := r.roleField(role); f != nil {
		*f = &names
	}
}

// PartiesByRole returns the non-absent role fields as a role -> names map.
func (r *Record) PartiesByRole() map[constants.Role]string {
	out := make(map[constants.Role]string)
	for _, role := range constants.Roles {
		if f := r.roleField(role); f != nil && *f != nil {
			out[role] = **f
		}
	}
	return out
}

// ExtractRecord runs every extractor against the raw document text and
// assembles the complete record. It never fails: empty or unmatchable input
// yields the all-absent record. The decision classifier runs last because it
// consumes the operative clause, the parties and the bank name.
func ExtractRecord(text string) Record {
	var rec Record
	if strings.TrimSpace(text) == "" {
		return rec
	}

	proc, estado := CaseNumberAndState(text)
	if proc != "" {
		rec.Processo = &proc
	}
	if estado != "" {
		rec.Estado = &estado
	}

	if tipo := RulingType(text); tipo != "" {
		rec.TipoProcesso = &tipo
	}

	if date := JudgmentDate(text); date != "" {
		rec.DataJulgamento = &date
	}

	parties := ParseParties(PartyBlock(text))
	for _, role := range constants.Roles {
		if names, ok := parties[role]; ok {
			rec.SetRole(role, names)
		}
	}

	banco := DetectBank(text)
	if banco != "" {
		rec.Banco = &banco
	}

	clause := OperativeClause(text)
	if decision := InferBankDecision(clause, parties, banco); decision != "" {
		d := string(decision)
		rec.DecisaoParaBanco = &d
	}

	return rec
}
