package lexicon

// #region place-nouns

// PlaceNouns is the vocabulary of nouns that read as a place on their own.
// Multi-word entries come before their single-word suffixes so the longer
// form wins a scan.
var PlaceNouns = []string{
	// Food & drink
	"coffee shop", "coffeehouse", "tea house", "teahouse", "sushi bar",
	"noodle shop", "food court", "food truck", "food hall", "juice bar",
	"ice cream shop", "espresso bar", "tea shop", "taco stand", "ramen shop",
	"sandwich shop", "burger joint", "beer hall", "cafe", "bar", "pub",
	"tavern", "restaurant", "bistro", "cantina", "pizzeria", "steakhouse",
	"diner", "cafeteria", "canteen", "bakery", "deli", "brewery", "taproom",
	"winery", "distillery", "speakeasy", "grill",
	// Homes & rooms
	"studio apartment", "laundry room", "living room", "dining room",
	"guest room", "home office", "walk-in closet", "storage room",
	"powder room", "front yard", "apartment", "flat", "condo", "home",
	"house", "loft", "dorm", "penthouse", "townhouse", "cottage", "bungalow",
	"cabin", "hut", "shack", "shed", "barn", "attic", "basement", "cellar",
	"pantry", "closet", "kitchen", "bedroom", "bathroom", "restroom",
	"washroom", "hallway", "corridor", "study", "nursery", "playroom",
	"sunroom", "conservatory", "den", "parlor", "garage", "yard", "backyard",
	"courtyard", "garden", "patio", "porch", "deck", "terrace", "veranda",
	"balcony", "rooftop", "foyer", "lobby", "entryway", "stairwell",
	// Work & services
	"police station", "fire station", "post office", "city hall", "town hall",
	"doctor's office", "construction site", "repair shop", "law office",
	"office", "workspace", "studio", "workshop", "warehouse", "factory",
	"plant", "lab", "laboratory", "clinic", "hospital", "pharmacy",
	"drugstore", "bank", "courthouse", "embassy", "consulate", "headquarters",
	"mailroom", "foundry",
	// Education & culture
	"lecture hall", "reading room", "concert hall", "music hall",
	"community center", "student union", "computer lab", "rehearsal room",
	"opera house", "art studio", "school", "preschool", "daycare",
	"classroom", "campus", "university", "college", "library", "archives",
	"museum", "gallery", "theater", "cinema", "auditorium", "stadium",
	"arena", "gym", "gymnasium", "dojo", "playground", "schoolyard",
	"observatory", "planetarium", "makerspace",
	// Retail & shopping
	"shopping mall", "shopping center", "convenience store", "corner store",
	"department store", "grocery store", "hardware store", "liquor store",
	"thrift store", "pawn shop", "farmer's market", "fish market",
	"gift shop", "antique shop", "comic shop", "bike shop", "jewelry store",
	"mall", "store", "shop", "grocery", "supermarket", "outlet", "bookstore",
	"boutique", "kiosk", "market", "butcher", "florist", "newsstand",
	"marketplace", "bazaar",
	// Transport
	"train station", "railway station", "bus stop", "bus station",
	"bus terminal", "subway station", "metro station", "ferry terminal",
	"parking lot", "parking garage", "gas station", "petrol station",
	"taxi stand", "truck stop", "border crossing", "ticket booth", "station",
	"subway", "metro", "platform", "airport", "runway", "terminal", "harbor",
	"harbour", "port", "marina", "dock", "pier", "boardwalk", "depot",
	"hangar", "checkpoint",
	// Roads & outdoors
	"rest stop", "rest area", "toll booth", "bike path",
	"street", "road", "avenue", "lane", "alley", "alleyway", "boulevard",
	"highway", "freeway", "motorway", "intersection", "roundabout",
	"crossroads", "sidewalk", "crosswalk", "driveway", "bridge", "tunnel",
	"overpass", "underpass", "trailhead", "plaza", "square", "promenade",
	"esplanade", "walkway", "footpath", "viaduct",
	// Nature
	"hot spring", "nature reserve", "national park", "state park",
	"botanical garden", "park", "beach", "shore", "coast", "bay", "lagoon",
	"lake", "river", "creek", "stream", "pond", "waterfall", "marsh",
	"swamp", "wetland", "estuary", "reef", "forest", "woods", "jungle",
	"meadow", "field", "prairie", "savanna", "desert", "canyon", "valley",
	"gorge", "ravine", "mountain", "hill", "ridge", "summit", "cliff",
	"cave", "plateau", "mesa", "dune", "oasis", "spring", "glacier",
	"volcano", "crater", "island", "peninsula", "cape", "campsite", "trail",
	"geyser", "arboretum", "grove", "orchard", "vineyard", "clearing",
	"brook", "bayou", "fjord",
	// Lodging & leisure
	"bed and breakfast", "bowling alley", "amusement park", "theme park",
	"water park", "golf course", "pool hall", "karaoke bar", "game room",
	"fitness center", "yoga studio", "dance studio", "climbing gym",
	"skate park", "ice rink", "race track", "hotel", "motel", "inn",
	"hostel", "guesthouse", "lodge", "resort", "spa", "club", "nightclub",
	"lounge", "barbershop", "salon", "pool", "casino", "zoo", "aquarium",
	"campground", "arcade",
	// Worship
	"prayer hall", "prayer room", "church hall", "church", "chapel",
	"cathedral", "mosque", "temple", "synagogue", "shrine", "monastery",
	"abbey", "convent", "pagoda", "basilica", "sanctuary", "ashram",
}

// #endregion place-nouns

// #region ambiguous-place-nouns

// AmbiguousPlaceNouns read as places only with nearby context (a determiner,
// location preposition, or motion verb). High recall, low precision.
var AmbiguousPlaceNouns = []string{
	// Generic structures
	"place", "spot", "area", "location", "site", "setting",
	"space", "zone", "section", "corner", "edge", "end",
	"structure", "facility", "premises", "grounds",
	// Buildings & interiors
	"building", "room", "hall", "floor", "level", "suite", "unit",
	"workroom", "chamber", "cell", "vault", "vestibule", "passage",
	"stairs", "staircase", "landing", "elevator", "lift",
	// Entrances & transitions
	"entrance", "exit", "door", "doorway", "gate", "gateway",
	"threshold", "archway", "passageway",
	// Outdoor / urban
	"way", "route", "block", "lot", "green", "commons", "crossing",
	"junction",
	// Civic / regional
	"town", "city", "village", "district", "quarter",
	"center", "centre", "downtown", "uptown", "midtown",
	"neighborhood", "neighbourhood", "suburb", "suburbs",
	// Travel & transit
	"stop", "stand",
	// Commerce & public
	"counter", "desk",
	// Nature (abstracted)
	"land", "terrain", "ground", "trees",
	// Event / gathering
	"venue",
	// Catch-all conversational
	"here", "there", "inside", "outside", "upstairs", "downstairs",
	"nearby", "around", "elsewhere",
}

// #endregion ambiguous-place-nouns

// #region generic-place-phrases

// GenericPlacePhrases are over-generic captures rejected outright even when a
// pattern technically matched. Compared after lowering and determiner
// stripping.
var GenericPlacePhrases = []string{
	"somewhere", "anywhere", "everywhere", "nowhere",
	"city", "town", "middle of nowhere", "distance", "way",
}

// #endregion generic-place-phrases

// #region descriptive-adjectives

// LocationalAdjectives mark a captured phrase as descriptive enough to boost.
var LocationalAdjectives = []string{
	"grand", "central", "old", "new", "main", "royal", "city", "great",
	"upper", "lower", "north", "south", "east", "west", "little", "big",
	"ancient", "abandoned", "hidden", "crowded", "quiet",
}

// #endregion descriptive-adjectives
