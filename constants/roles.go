package constants

// Role is a procedural role a party can occupy in a ruling.
type Role string

const (
	Agravante   Role = "AGRAVANTE"
	Agravado    Role = "AGRAVADO"
	Recorrente  Role = "RECORRENTE"
	Recorrido   Role = "RECORRIDO"
	Embargante  Role = "EMBARGANTE"
	Embargado   Role = "EMBARGADO"
	Autor       Role = "AUTOR"
	Reu         Role = "REU"
	Interessado Role = "INTERESSADO"
)

// Roles is the closed role vocabulary in its fixed check order. Party labels
// are matched by substring containment, so on overlapping labels the first
// role in this slice wins. Labels are accent-stripped before the check, which
// folds "RÉU" into REU.
var Roles = []Role{
	Agravante,
	Agravado,
	Recorrente,
	Recorrido,
	Embargante,
	Embargado,
	Autor,
	Reu,
	Interessado,
}

// AppellantRoles are the roles of the party that brought the appeal.
var AppellantRoles = []Role{Agravante, Recorrente, Embargante}

// AppelleeRoles are the roles of the party the appeal was brought against.
var AppelleeRoles = []Role{Agravado, Recorrido, Embargado}

func RolesAsStringSlice() []string {
	result := make([]string, len(Roles))
	for i, r := range Roles {
		result[i] = string(r)
	}
	return result
}
