package herbs

// catalog is the canonical herb table. Declaration order is load-bearing:
// the matcher breaks score ties by position in this table, so entries are
// grouped by tradition and ordered from most to least commonly recommended
// within each group.
var catalog = []HerbRecord{
	// African Diaspora
	{
		ID:             "hibiscus",
		Name:           "Hibiscus",
		ScientificName: "Hibiscus sabdariffa",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"cooling", "sour"},
		Actions:        []string{"cooling", "heart supportive", "hydrating"},
		Uses:           []string{"high blood pressure", "hot flashes", "summer heat", "fatigue from heat"},
		Cautions:       []string{"may lower blood pressure, use care with hypotension medication"},
		Pairings:       []string{"ginger", "moringa"},
	},
	{
		ID:             "moringa",
		Name:           "Moringa",
		ScientificName: "Moringa oleifera",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"neutral", "nourishing"},
		Actions:        []string{"nourishing", "energizing", "mineral rich"},
		Uses:           []string{"low energy", "fatigue", "nutrient depletion", "postpartum recovery"},
		Cautions:       []string{"avoid root and bark preparations during pregnancy"},
		Pairings:       []string{"hibiscus", "baobab", "kinkeliba"},
	},
	{
		ID:             "soursop-leaf",
		Name:           "Soursop Leaf",
		ScientificName: "Annona muricata",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"cooling", "relaxing"},
		Actions:        []string{"calming", "sleep supportive"},
		Uses:           []string{"restlessness", "poor sleep", "nervous tension"},
		Cautions:       []string{"not for long term daily use", "avoid with movement disorders"},
		Pairings:       []string{"blue-vervain"},
	},
	{
		ID:             "blue-vervain",
		Name:           "Blue Vervain",
		ScientificName: "Verbena hastata",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"cooling", "bitter"},
		Actions:        []string{"calming", "nervine", "tension easing"},
		Uses:           []string{"stress", "neck and shoulder tension", "irritability"},
		Cautions:       []string{"large doses may cause nausea", "avoid during pregnancy"},
		Pairings:       []string{"soursop-leaf"},
	},
	{
		ID:             "kinkeliba",
		Name:           "Kinkeliba",
		ScientificName: "Combretum micranthum",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"neutral", "clearing"},
		Actions:        []string{"digestive", "liver supportive", "gentle detox"},
		Uses:           []string{"sluggish digestion", "morning heaviness", "liver support"},
		Cautions:       []string{"may strengthen the effect of blood sugar medication"},
		Pairings:       []string{"moringa"},
	},
	{
		ID:             "baobab",
		Name:           "Baobab",
		ScientificName: "Adansonia digitata",
		Traditions:     []Tradition{TraditionAfricanDiaspora},
		Energetics:     []string{"cooling", "moistening"},
		Actions:        []string{"hydrating", "digestive", "vitamin rich"},
		Uses:           []string{"dry skin", "low immunity", "gut health"},
		Cautions:       []string{"high fiber content may cause bloating in sensitive digestion"},
		Pairings:       []string{"moringa", "hibiscus"},
	},

	// Ayurvedic
	{
		ID:             "ashwagandha",
		Name:           "Ashwagandha",
		ScientificName: "Withania somnifera",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"warming", "grounding"},
		Actions:        []string{"adaptogenic", "calming", "strength building", "energizing"},
		Uses:           []string{"stress", "fatigue", "poor sleep", "low energy"},
		Cautions: []string{
			"nightshade family, avoid with nightshade sensitivity",
			"avoid with hyperthyroid conditions",
			"avoid during pregnancy",
		},
		Pairings: []string{"tulsi", "brahmi", "shatavari"},
	},
	{
		ID:             "tulsi",
		Name:           "Tulsi",
		ScientificName: "Ocimum tenuiflorum",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"warming", "uplifting"},
		Actions:        []string{"adaptogenic", "uplifting", "clarifying"},
		Uses:           []string{"stress", "brain fog", "low mood", "seasonal congestion"},
		Cautions:       []string{"may slow blood clotting, pause before surgery"},
		Pairings:       []string{"ashwagandha", "ginger"},
	},
	{
		ID:             "brahmi",
		Name:           "Brahmi",
		ScientificName: "Bacopa monnieri",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"cooling", "clarifying"},
		Actions:        []string{"clarifying", "memory supportive", "calming"},
		Uses:           []string{"brain fog", "poor focus", "mental fatigue", "memory"},
		Cautions:       []string{"may upset an empty stomach, take with food"},
		Pairings:       []string{"ashwagandha", "gotu-kola"},
	},
	{
		ID:             "gotu-kola",
		Name:           "Gotu Kola",
		ScientificName: "Centella asiatica",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"cooling", "light"},
		Actions:        []string{"clarifying", "circulation supportive", "skin healing"},
		Uses:           []string{"focus", "mental clarity", "slow healing skin"},
		Cautions:       []string{"avoid with liver conditions"},
		Pairings:       []string{"brahmi"},
	},
	{
		ID:             "triphala",
		Name:           "Triphala",
		ScientificName: "Emblica officinalis, Terminalia bellirica, Terminalia chebula",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"balancing", "astringent"},
		Actions:        []string{"digestive", "gentle laxative", "rejuvenative"},
		Uses:           []string{"constipation", "sluggish digestion", "gut health"},
		Cautions:       []string{"avoid during pregnancy", "high doses may cause loose stools"},
		Pairings:       []string{"ginger"},
	},
	{
		ID:             "shatavari",
		Name:           "Shatavari",
		ScientificName: "Asparagus racemosus",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"cooling", "moistening"},
		Actions:        []string{"nourishing", "hormone balancing", "moistening"},
		Uses:           []string{"hormonal balance", "hot flashes", "postpartum recovery", "dryness"},
		Cautions:       []string{"avoid with estrogen sensitive conditions"},
		Pairings:       []string{"ashwagandha"},
	},
	{
		ID:             "turmeric",
		Name:           "Turmeric",
		ScientificName: "Curcuma longa",
		Traditions:     []Tradition{TraditionAyurvedic},
		Energetics:     []string{"warming", "drying"},
		Actions:        []string{"anti inflammatory", "digestive", "circulation supportive"},
		Uses:           []string{"joint pain", "inflammation", "sluggish digestion"},
		Cautions:       []string{"may thin the blood", "avoid high doses with gallstones"},
		Pairings:       []string{"ginger"},
	},

	// Traditional Chinese Medicine
	{
		ID:             "ginseng",
		Name:           "Ginseng",
		ScientificName: "Panax ginseng",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"warming", "tonifying"},
		Actions:        []string{"energizing", "qi tonifying", "adaptogenic"},
		Uses:           []string{"fatigue", "low energy", "weak immunity", "poor concentration"},
		Cautions:       []string{"may raise blood pressure", "avoid combining with stimulants", "high doses may disturb sleep"},
		Pairings:       []string{"astragalus", "schisandra"},
	},
	{
		ID:             "astragalus",
		Name:           "Astragalus",
		ScientificName: "Astragalus membranaceus",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"warming", "tonifying"},
		Actions:        []string{"immune strengthening", "qi tonifying", "protective"},
		Uses:           []string{"frequent colds", "low immunity", "fatigue"},
		Cautions:       []string{"pause during acute infection with fever", "may interact with immunosuppressant medication"},
		Pairings:       []string{"ginseng", "reishi"},
	},
	{
		ID:             "schisandra",
		Name:           "Schisandra",
		ScientificName: "Schisandra chinensis",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"warming", "five flavored"},
		Actions:        []string{"adaptogenic", "liver supportive", "focus sharpening"},
		Uses:           []string{"stress", "mental fatigue", "focus", "liver support"},
		Cautions:       []string{"avoid during pregnancy", "may aggravate acid reflux"},
		Pairings:       []string{"ginseng", "goji"},
	},
	{
		ID:             "goji",
		Name:           "Goji Berry",
		ScientificName: "Lycium barbarum",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"neutral", "sweet"},
		Actions:        []string{"nourishing", "eye supportive", "blood building"},
		Uses:           []string{"tired eyes", "low energy", "dryness"},
		Cautions: []string{
			"nightshade family, avoid with nightshade sensitivity",
			"may interact with blood thinners and blood pressure medication",
		},
		Pairings: []string{"schisandra", "chrysanthemum"},
	},
	{
		ID:             "reishi",
		Name:           "Reishi",
		ScientificName: "Ganoderma lucidum",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"neutral", "grounding"},
		Actions:        []string{"calming", "immune modulating", "sleep supportive"},
		Uses:           []string{"poor sleep", "stress", "low immunity"},
		Cautions:       []string{"may thin the blood, pause before surgery"},
		Pairings:       []string{"astragalus"},
	},
	{
		ID:             "chrysanthemum",
		Name:           "Chrysanthemum",
		ScientificName: "Chrysanthemum morifolium",
		Traditions:     []Tradition{TraditionTCM},
		Energetics:     []string{"cooling", "light"},
		Actions:        []string{"cooling", "eye soothing", "clarifying"},
		Uses:           []string{"tired eyes", "tension headache", "summer heat"},
		Cautions:       []string{"avoid with ragweed allergy"},
		Pairings:       []string{"goji"},
	},

	// Shared across traditions
	{
		ID:             "ginger",
		Name:           "Ginger",
		ScientificName: "Zingiber officinale",
		Traditions:     []Tradition{TraditionAfricanDiaspora, TraditionAyurvedic, TraditionTCM},
		Energetics:     []string{"warming", "pungent"},
		Actions:        []string{"warming", "digestive", "circulation boosting", "nausea easing"},
		Uses:           []string{"nausea", "cold hands and feet", "sluggish digestion", "menstrual cramps"},
		Cautions:       []string{"may thin the blood", "limit with gallstones"},
		Pairings:       []string{"turmeric", "hibiscus", "triphala", "tulsi"},
	},
}

// edgeTable is the canonical synergy-pathway table. Declaration order is
// preserved by GraphConnectionsFor.
var edgeTable = []HerbEdge{
	{From: "hibiscus", To: "ginger", Label: "cooling-warming balance for circulation"},
	{From: "hibiscus", To: "moringa", Label: "daily mineral and heart support tonic"},
	{From: "moringa", To: "baobab", Label: "nutritive pair for depletion and recovery"},
	{From: "moringa", To: "kinkeliba", Label: "morning tonic with gentle liver support"},
	{From: "soursop-leaf", To: "blue-vervain", Label: "evening wind-down nervines"},
	{From: "ashwagandha", To: "tulsi", Label: "grounding and uplifting adaptogen pair"},
	{From: "ashwagandha", To: "brahmi", Label: "steady energy with a clear head"},
	{From: "ashwagandha", To: "shatavari", Label: "classical strength and nourishment pair"},
	{From: "brahmi", To: "gotu-kola", Label: "synergistic clarity duo"},
	{From: "triphala", To: "ginger", Label: "synergistic digestive duo"},
	{From: "turmeric", To: "ginger", Label: "warming anti-inflammatory allies"},
	{From: "tulsi", To: "ginger", Label: "clearing and warming for damp mornings"},
	{From: "ginseng", To: "astragalus", Label: "qi tonifying foundation pair"},
	{From: "ginseng", To: "schisandra", Label: "stamina with sharpened focus"},
	{From: "schisandra", To: "goji", Label: "liver and eye nourishment"},
	{From: "goji", To: "chrysanthemum", Label: "classic bright-eyes tea pair"},
	{From: "astragalus", To: "reishi", Label: "deep immune restoration pair"},
}
