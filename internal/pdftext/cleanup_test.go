package pdftext

import "testing"

func TestCleanupCollapsesNoise(t *testing.T) {
	in := "AGRAVANTE:\tBANCO  PAN S.A.\r\n\r\n\r\n\r\nAGRAVADO: FULANO   \r\n"
	want := "AGRAVANTE: BANCO PAN S.A.\n\nAGRAVADO: FULANO"
	if got := Cleanup(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanupKeepsLineBreaks(t *testing.T) {
	in := "linha um\nlinha dois"
	if got := Cleanup(in); got != in {
		t.Fatalf("line breaks must survive, got %q", got)
	}
}

func TestCleanupEmpty(t *testing.T) {
	if got := Cleanup(""); got != "" {
		t.Fatalf("got %q", got)
	}
}
