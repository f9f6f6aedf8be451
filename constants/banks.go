package constants

// CommonBanks lists the banks the detector recognizes by name, in check
// order. Containment checks run over accent-stripped uppercase text, so the
// accented entries still match scanned documents that lost their diacritics.
// The canonical (listed) spelling is what ends up in the record.
var CommonBanks = []string{
	"ITAÚ UNIBANCO",
	"ITAU UNIBANCO",
	"ITAU",
	"BANCO DO BRASIL",
	"BRADESCO",
	"SANTANDER",
	"CAIXA ECONOMICA FEDERAL",
	"CAIXA ECONOMICA",
	"CAIXA",
	"BANCO SAFRA",
	"BANCO MERCANTIL",
	"BANCO RURAL",
	"BANCO PAN",
	"BANCO INTER",
}
