package casefile

import (
	"maps"

	"github.com/mabhi256/dquest/internal/estate"
)

const MansionName = "Mansão Enigma"

var referenceSuspects = []string{"Joaquim", "Mariana", "Carlos", "Fernanda"}

var referenceAssociations = map[string]string{
	"pegada lama":      "Joaquim",
	"fio de seda":      "Mariana",
	"bilhete rasgado":  "Carlos",
	"talher sujo":      "Mariana",
	"cartao de visita": "Fernanda",
	"marca de prensa":  "Joaquim",
	"pó dourado":       "Carlos",
}

// BuildMansion returns the built-in estate:
//
//	Hall de Entrada
//	├── Sala de Estar            [cartao de visita]
//	│   ├── Sala de Jantar
//	│   │   └── Adega            [pegada lama]      (left)
//	│   └── Escritório           [bilhete rasgado]
//	└── Vestíbulo
//	    ├── Corredor
//	    │   ├── Biblioteca       [marca de prensa]
//	    │   └── Cozinha          [talher sujo]
//	    └── Jardim               [pó dourado]
//	        └── Sotão            [fio de seda]      (right)
func BuildMansion() *estate.Room {
	adega := estate.NewLeaf("Adega", "pegada lama")
	sotao := estate.NewLeaf("Sotão", "fio de seda")
	escritorio := estate.NewLeaf("Escritório", "bilhete rasgado")
	cozinha := estate.NewLeaf("Cozinha", "talher sujo")
	biblioteca := estate.NewLeaf("Biblioteca", "marca de prensa")

	salaJantar := estate.NewRoom("Sala de Jantar", "", adega, nil)
	jardim := estate.NewRoom("Jardim", "pó dourado", nil, sotao)
	corredor := estate.NewRoom("Corredor", "", biblioteca, cozinha)
	salaEstar := estate.NewRoom("Sala de Estar", "cartao de visita", salaJantar, escritorio)
	vestibulo := estate.NewRoom("Vestíbulo", "", corredor, jardim)

	return estate.NewRoom("Hall de Entrada", "", salaEstar, vestibulo)
}

// ReferenceSuspects lists the built-in suspects in ledger order.
func ReferenceSuspects() []string {
	return append([]string(nil), referenceSuspects...)
}

func ReferenceAssociations() map[string]string {
	return maps.Clone(referenceAssociations)
}

// Reference returns the built-in mansion as a case file.
func Reference() *CaseFile {
	return &CaseFile{
		Name:         MansionName,
		Suspects:     ReferenceSuspects(),
		Associations: ReferenceAssociations(),
		Estate:       SpecFromRoom(BuildMansion()),
	}
}
