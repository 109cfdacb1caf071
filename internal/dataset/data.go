package dataset

// Department names in display order. Embedded line breaks are kept as chart
// label hints.
var departmentNames = []string{
	"Ciencias Administrativas",
	"Ciencias Biológicas",
	"Ciencias Contables",
	"Ciencias Económicas",
	"Ciencias Físicas",
	"Ciencias Matemáticas",
	"Ciencias Sociales",
	"Derecho y Ciencia Política",
	"Educación",
	"Farmacia y Bioquímica",
	"Ingenierías de\nSistemas y Informática",
	"Ingeniería\nElectrónica y Eléctrica",
	"Ingeniería Geológica, Minera,\n Metalúrgica y Geográfica",
	"Ingeniería Industrial",
	"Letras y Ciencias Humanas",
	"Medicina",
	"Medicina Veterinaria",
	"Odontología",
	"Psicología",
	"Química e Ingeniería Química",
}

// Students who passed without failing (invictos).
var passedCounts = []int{2606, 571, 2011, 1248, 290, 466, 1315, 1343, 1496, 513, 1059, 1189, 913, 937, 444, 902, 325, 328, 1044, 575}

// Students who failed (desaprobados).
var failedCounts = []int{438, 331, 1465, 960, 609, 834, 620, 580, 598, 212, 622, 968, 898, 690, 794, 559, 106, 94, 141, 755}
