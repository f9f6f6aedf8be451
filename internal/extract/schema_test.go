package extract

import "testing"

func TestValidateRecordAcceptsExtractedRecords(t *testing.T) {
	schema, err := CompileRecordSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	for _, text := range []string{"", sampleRuling} {
		if err := ValidateRecord(schema, ExtractRecord(text)); err != nil {
			t.Fatalf("record for %d-byte input should validate: %v", len(text), err)
		}
	}
}

func TestValidateRecordRejectsBadState(t *testing.T) {
	schema, err := CompileRecordSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	bad := "sp2"
	rec := Record{Estado: &bad}
	if err := ValidateRecord(schema, rec); err == nil {
		t.Fatal("expected validation error for malformed estado")
	}
}

func TestValidateRecordRejectsBadDecision(t *testing.T) {
	schema, err := CompileRecordSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	bad := "talvez"
	rec := Record{DecisaoParaBanco: &bad}
	if err := ValidateRecord(schema, rec); err == nil {
		t.Fatal("expected validation error for unknown decision label")
	}
}
