package extract

import (
	"strings"
	"testing"

	"github.com/cferraz/acordaos-tracker/constants"
)

func TestParsePartiesWithContinuationLine(t *testing.T) {
	block := "AGRAVANTE: Banco XYZ S.A.\nContinuação do nome\nAGRAVADO: Fulano de Tal"
	parties := ParseParties(block)

	if got := parties[constants.Agravante]; got != "Banco XYZ S.A. Continuacao do nome" {
		t.Fatalf("AGRAVANTE: got %q", got)
	}
	if got := parties[constants.Agravado]; got != "Fulano de Tal" {
		t.Fatalf("AGRAVADO: got %q", got)
	}
}

func TestParsePartiesDeduplicatesPerRole(t *testing.T) {
	block := "AGRAVANTE: Banco XYZ S.A.\n\nAGRAVANTE: Banco  XYZ   S.A.\n\nAGRAVANTE: Outro Nome"
	parties := ParseParties(block)

	got := parties[constants.Agravante]
	if got != "Banco XYZ S.A.; Outro Nome" {
		t.Fatalf("expected deduplicated join, got %q", got)
	}
}

func TestParsePartiesSkipsUnknownLabels(t *testing.T) {
	block := "RELATOR: Min. Fulano\nRECORRENTE: Banco ABC\nEMENTA: texto livre"
	parties := ParseParties(block)

	if len(parties) != 1 {
		t.Fatalf("expected 1 role, got %d: %v", len(parties), parties)
	}
	if got := parties[constants.Recorrente]; got != "Banco ABC" {
		t.Fatalf("RECORRENTE: got %q", got)
	}
}

func TestParsePartiesAccentStrippedLabel(t *testing.T) {
	parties := ParseParties("RÉU: Sicrano de Tal")
	if got := parties[constants.Reu]; got != "Sicrano de Tal" {
		t.Fatalf("REU: got %q", got)
	}
}

func TestPartyBlockBetweenReportAndVote(t *testing.T) {
	text := "cabeçalho\nRELATÓRIO\nAGRAVANTE: Banco A\nAGRAVADO: Parte B\nVOTO\nAGRAVANTE: nao deveria aparecer"
	block := PartyBlock(text)

	if !strings.Contains(block, "AGRAVANTE: Banco A") {
		t.Fatalf("block should contain the party lines, got %q", block)
	}
	if strings.Contains(block, "nao deveria aparecer") {
		t.Fatalf("block should stop before VOTO, got %q", block)
	}
}

func TestPartyBlockBeforeVoteOnly(t *testing.T) {
	text := "AGRAVANTE: Banco A\nVOTO\nresto"
	block := PartyBlock(text)
	if block != "AGRAVANTE: Banco A\n" {
		t.Fatalf("got %q", block)
	}
}

func TestPartyBlockHeadFallback(t *testing.T) {
	text := strings.Repeat("x", 2000)
	block := PartyBlock(text)
	if len(block) != 1500 {
		t.Fatalf("expected first 1500 chars, got %d", len(block))
	}
}
