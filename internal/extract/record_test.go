package extract

import (
	"encoding/json"
	"testing"
)

const sampleRuling = `AGRAVO EM RECURSO ESPECIAL Nº 2279744 - SP
RELATÓRIO
AGRAVANTE: BANCO ITAU UNIBANCO S.A.
AGRAVADO: FULANO DE TAL
VOTO
O relator apresentou as razões do voto.
ACORDAM os Ministros da Turma em negar provimento ao agravo.
Brasília, 30 de agosto de 2023.`

func TestExtractRecordFullDocument(t *testing.T) {
	rec := ExtractRecord(sampleRuling)

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Fatalf("%s: got %q, want %q", field, got, want)
		}
	}
	deref := func(p *string) string {
		if p == nil {
			return "<absent>"
		}
		return *p
	}

	check("processo", deref(rec.Processo), "2279744")
	check("estado", deref(rec.Estado), "SP")
	check("tipo_processo", deref(rec.TipoProcesso), "AGRAVO EM RECURSO ESPECIAL")
	check("data_julgamento", deref(rec.DataJulgamento), "30/08/2023")
	check("AGRAVANTE", deref(rec.Agravante), "BANCO ITAU UNIBANCO S.A.")
	check("AGRAVADO", deref(rec.Agravado), "FULANO DE TAL")
	check("banco", deref(rec.Banco), "ITAÚ UNIBANCO")
	check("decisao_para_banco", deref(rec.DecisaoParaBanco), "contraria")

	if rec.Recorrente != nil || rec.Autor != nil {
		t.Fatalf("unmatched roles must stay absent")
	}
}

func TestExtractRecordEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t  "} {
		rec := ExtractRecord(in)
		for i, v := range rec.Values() {
			if v != "" {
				t.Fatalf("field %s should be absent for empty input, got %q", columns[i], v)
			}
		}
	}
}

func TestRecordJSONHasExactlyTheSchemaKeys(t *testing.T) {
	data, err := json.Marshal(ExtractRecord(""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != len(columns) {
		t.Fatalf("expected %d keys, got %d: %v", len(columns), len(m), m)
	}
	for _, c := range columns {
		v, ok := m[c]
		if !ok {
			t.Fatalf("missing key %q", c)
		}
		if v != nil {
			t.Fatalf("key %q should be null on the all-absent record, got %v", c, v)
		}
	}
}

func TestColumnsAndValuesAlign(t *testing.T) {
	rec := ExtractRecord(sampleRuling)
	cols := Columns()
	vals := rec.Values()
	if len(cols) != len(vals) {
		t.Fatalf("columns/values length mismatch: %d vs %d", len(cols), len(vals))
	}
	if cols[0] != "processo" || vals[0] != "2279744" {
		t.Fatalf("column order broken: %v / %v", cols[:2], vals[:2])
	}
	if cols[len(cols)-1] != "decisao_para_banco" {
		t.Fatalf("last column should be decisao_para_banco, got %q", cols[len(cols)-1])
	}
}
