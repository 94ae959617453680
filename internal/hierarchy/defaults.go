package hierarchy

// Default remote locations of the published hierarchies.
const (
	DefaultCPCURL   = "https://raw.githubusercontent.com/eRUN07N/arborescence/refs/heads/main/arborescence-cpc.json"
	DefaultPersoURL = "https://raw.githubusercontent.com/micetf/arborescences/main/arborescence-perso.json"
)

// DefaultURLs returns the remote location of each hierarchy type.
func DefaultURLs() map[Type]string {
	return map[Type]string{
		TypeCPC:   DefaultCPCURL,
		TypePerso: DefaultPersoURL,
	}
}

// Defaults returns the built-in hierarchy used when the configured one
// cannot be loaded. Unknown types yield nil.
func Defaults(t Type) *Branch {
	switch t {
	case TypeCPC:
		return NewTree(
			Folder("00_Ressources-pedagogiques-numeriques",
				Folder("ApplicationsEducatives",
					Folder("Robotique",
						Folder("Tutoriels"),
						Folder("Séquences"),
						Folder("Projets"),
					),
					Folder("Programmation",
						Folder("Scratch"),
						Folder("Python"),
					),
				),
				Folder("OutilsNumeriques",
					Folder("ENT"),
					Folder("Tablettes"),
					Folder("TBI"),
				),
			),
			Folder("00_Projets-numeriques",
				Folder("Experimentations",
					Folder("KitRobotiqueCM",
						Folder("StRomainLerps"),
						Folder("Mauves"),
					),
					Folder("ClassesMobiles"),
				),
				Folder("FormationEnseignants",
					Folder("Webinaires"),
					Folder("Présentiel"),
				),
			),
		)
	case TypePerso:
		return NewTree(
			Folder("01_Ressources",
				Folder("Tutoriels"),
				Folder("Modèles"),
				Folder("Références"),
			),
			Folder("02_Projets",
				Folder("EnCours"),
				Folder("Terminés"),
				Folder("Idées"),
			),
		)
	default:
		return nil
	}
}
