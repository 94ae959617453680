package pattern

// Default returns the built-in dictionary.
func Default() Dictionary {
	return Dictionary{
		// Projets numériques
		{Name: "robotique", Patterns: []string{
			"robot", "mbot", "thymio", "programmation robotique", "robots éducatifs",
			"arduino", "lego mindstorms", "robotique pédagogique", "atelier robotique",
		}},
		{Name: "RGPD", Patterns: []string{
			"données", "consentement", "CNIL", "protection des données", "confidentialité",
			"données personnelles", "droit à l'oubli", "traitement des données", "obligations RGPD",
		}},
		{Name: "programmation", Patterns: []string{
			"scratch", "python", "algorithme", "code", "coding", "codage",
			"programmation par blocs", "heure de code", "semaine du code", "coding goûter",
		}},
		{Name: "tablettes", Patterns: []string{
			"tablette", "ipad", "android", "applications mobiles", "usages pédagogiques tablettes",
			"classe mobile", "mobilité numérique", "applications éducatives",
		}},
		{Name: "formation", Patterns: []string{
			"formation", "atelier", "webinaire", "présentiel", "animation pédagogique",
			"parcours m@gistère", "formation continue", "conférence", "intervenant",
		}},
		{Name: "TBI", Patterns: []string{
			"tbi", "tni", "tableau interactif", "tableau numérique", "écran interactif",
			"activités TBI", "logiciels TBI", "ressources TBI", "promethean", "smart board",
		}},
		{Name: "ENT", Patterns: []string{
			"ent", "environnement numérique", "espace numérique", "one", "eclat bfc",
			"messagerie", "cahier de texte numérique", "espace collaboratif",
		}},
		{Name: "logiciels", Patterns: []string{
			"logiciel", "application", "software", "suite bureautique", "traitement de texte",
			"libre office", "microsoft office", "outils numériques",
		}},
		{Name: "ressources", Patterns: []string{
			"ressources", "tutoriel", "guide", "manuel", "documentation",
			"supports pédagogiques", "fiches", "séquences", "progression",
		}},
		{Name: "pédagogie", Patterns: []string{
			"pédagogie", "didactique", "enseignement", "apprentissage", "séquence",
			"séance", "projet", "compétences", "évaluation", "différenciation",
		}},

		// Niveaux scolaires
		{Name: "maternelle", Patterns: []string{
			"maternelle", "cycle 1", "ps", "ms", "gs", "petite section",
			"moyenne section", "grande section", "école maternelle",
		}},
		{Name: "elementaire", Patterns: []string{
			"élémentaire", "primaire", "cycle 2", "cycle 3", "cp", "ce1", "ce2",
			"cm1", "cm2", "école élémentaire", "école primaire",
		}},
		{Name: "college", Patterns: []string{
			"collège", "6ème", "5ème", "4ème", "3ème", "sixième", "cinquième",
			"quatrième", "troisième", "brevet", "dnb",
		}},

		// Éducation spécialisée
		{Name: "inclusionScolaire", Patterns: []string{
			"inclusion", "handicap", "adaptation", "différenciation", "accessibilité",
			"ULIS", "SEGPA", "RASED", "PAP", "PPS", "PPRE", "dyslexie", "dyspraxie", "dyscalculie",
		}},

		// Disciplines
		{Name: "francais", Patterns: []string{
			"français", "lecture", "écriture", "grammaire", "orthographe", "vocabulaire",
			"littérature", "production d'écrit", "compréhension", "fluence",
		}},
		{Name: "mathematiques", Patterns: []string{
			"mathématiques", "maths", "nombres", "calcul", "géométrie", "problèmes",
			"numération", "opérations", "mesures", "grandeurs",
		}},
		{Name: "sciencesTechno", Patterns: []string{
			"sciences", "technologie", "expériences", "démarche scientifique", "physique",
			"chimie", "svt", "biologie", "développement durable", "environnement",
		}},
		{Name: "languesVivantes", Patterns: []string{
			"anglais", "allemand", "espagnol", "italien", "langue vivante", "lve",
			"langues étrangères", "bilangue", "linguistique",
		}},
		{Name: "histoireGeo", Patterns: []string{
			"histoire", "géographie", "emc", "civique", "citoyenneté", "temps",
			"espace", "chronologie", "cartes", "repères temporels",
		}},
		{Name: "artsMusique", Patterns: []string{
			"arts", "musique", "éducation musicale", "chant", "histoire des arts",
			"arts plastiques", "visuel", "artistique", "œuvres",
		}},
		{Name: "eps", Patterns: []string{
			"eps", "sport", "éducation physique", "motricité", "activités physiques",
			"natation", "gymnastique", "jeux collectifs", "athlétisme",
		}},
	}
}
