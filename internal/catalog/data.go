package catalog

import "time"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// seedCategories is the full category catalog, in display order.
var seedCategories = []Category{
	{ID: "science", Name: "Science", Icon: "Atom", Description: "Unravel the mysteries of the universe, from quantum particles to cosmic structures.", Gradient: "from-cyan-800 via-blue-900 to-indigo-900"},
	{ID: "history", Name: "History", Icon: "Landmark", Description: "Journey through time and witness the rise and fall of civilizations.", Gradient: "from-amber-800 via-orange-900 to-red-900"},
	{ID: "art", Name: "Art", Icon: "Palette", Description: "Explore the boundless realms of human creativity and expression.", Gradient: "from-purple-800 via-fuchsia-900 to-pink-900"},
	{ID: "technology", Name: "Technology", Icon: "Cpu", Description: "Discover the innovations that shape our world and our future.", Gradient: "from-slate-700 via-gray-800 to-neutral-900"},
	{ID: "philosophy", Name: "Philosophy", Icon: "BrainCircuit", Description: "Contemplate the fundamental questions of existence, knowledge, and reason.", Gradient: "from-emerald-800 via-teal-900 to-green-900"},
	{ID: "space", Name: "Space", Icon: "Rocket", Description: "Venture into the final frontier and explore the wonders of the cosmos.", Gradient: "from-indigo-900 via-black to-purple-900"},
}

// seedArticles is the full article catalog. Slice order is catalog order:
// lookups and search results are returned in this order, never re-ranked.
var seedArticles = []Article{
	{
		ID:         "quantum-physics-101",
		CategoryID: "science",
		Title:      "The Quantum Realm",
		Summary:    "An introduction to the strange and wonderful world of quantum mechanics.",
		ColorTheme: "#00e0ff",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Venture beyond the classical world into a realm where the rules of reality are rewritten. Quantum mechanics is the foundation of modern physics, yet it remains one of the most mysterious and counter-intuitive subjects in all of science."},
			{Kind: BlockImage, Caption: "The double-slit experiment revealed the wave-particle duality of matter."},
			{Kind: BlockParagraph, Text: "At its core, quantum physics deals with the smallest scales of energy and matter. One of the most famous concepts is wave-particle duality, where entities like electrons and photons exhibit properties of both waves and particles."},
			{Kind: BlockQuote, Text: "If you think you understand quantum mechanics, you don't understand quantum mechanics.", Author: "Richard Feynman"},
		},
		Related:   []string{"black-holes", "theory-of-relativity", "dna-structure"},
		Views:     1205,
		CreatedAt: mustTime("2023-10-26T10:00:00Z"),
	},
	{
		ID:         "theory-of-relativity",
		CategoryID: "science",
		Title:      "Relativity",
		Summary:    "Albert Einstein's revolutionary theory of space, time, and gravity.",
		ColorTheme: "#00e0ff",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Published in 1915, the theory of general relativity describes gravity not as a force, but as a consequence of the curvature of spacetime caused by the uneven distribution of mass and energy. It fundamentally changed our understanding of the cosmos."},
		},
		Related:   []string{"black-holes", "quantum-physics-101", "exoplanets"},
		Views:     1890,
		CreatedAt: mustTime("2023-10-01T12:00:00Z"),
	},
	{
		ID:         "dna-structure",
		CategoryID: "science",
		Title:      "The Double Helix",
		Summary:    "Uncoiling the blueprint of life itself: the structure and function of DNA.",
		ColorTheme: "#00e0ff",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Deoxyribonucleic acid, or DNA, is a molecule that carries the genetic instructions for the development, functioning, growth, and reproduction of all known organisms and many viruses. Its discovery in the 1950s revolutionized biology and medicine."},
		},
		Related:   []string{"quantum-physics-101"},
		Views:     950,
		CreatedAt: mustTime("2023-11-15T11:00:00Z"),
	},
	{
		ID:         "plate-tectonics",
		CategoryID: "science",
		Title:      "Earth's Restless Surface",
		Summary:    "Understanding the massive, shifting plates that form our planet's surface.",
		ColorTheme: "#00e0ff",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The theory of plate tectonics explains the large-scale motions of Earth's lithosphere. This process is responsible for earthquakes, volcanic eruptions, and the creation of mountain ranges, shaping the very ground beneath our feet over millions of years."},
		},
		Related:   []string{"black-holes"},
		Views:     780,
		CreatedAt: mustTime("2023-09-22T16:00:00Z"),
	},
	{
		ID:         "ancient-rome",
		CategoryID: "history",
		Title:      "The Roman Empire",
		Summary:    "Explore the legacy of an empire that shaped Western civilization.",
		ColorTheme: "#ffca80",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "For over a thousand years, Rome grew from a small city into a vast empire that stretched from Britain to Mesopotamia. Its legacy in law, governance, and architecture endures."},
			{Kind: BlockImage, Caption: "The Colosseum, an enduring symbol of Roman engineering."},
			{Kind: BlockQuote, Text: "Veni, vidi, vici. (I came, I saw, I conquered.)", Author: "Julius Caesar"},
		},
		Related:   []string{"ancient-greece", "egyptian-pharaohs", "stoicism"},
		Views:     2341,
		CreatedAt: mustTime("2023-09-15T14:30:00Z"),
	},
	{
		ID:         "ancient-greece",
		CategoryID: "history",
		Title:      "Cradle of Western Thought",
		Summary:    "Discover the birthplace of democracy, philosophy, and epic storytelling.",
		ColorTheme: "#ffca80",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Ancient Greece was a civilization that belonged to a period of Greek history from the Archaic period of the 8th to 6th centuries BC to the end of antiquity. It was the fountainhead of Western culture, influencing everything from politics to art."},
		},
		Related:   []string{"ancient-rome", "philosophy", "stoicism"},
		Views:     1987,
		CreatedAt: mustTime("2023-09-01T10:00:00Z"),
	},
	{
		ID:         "industrial-revolution",
		CategoryID: "history",
		Title:      "The Age of Steam and Steel",
		Summary:    "The great transition from hand production methods to machines.",
		ColorTheme: "#ffca80",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The Industrial Revolution marked a period of development in the latter half of the 18th century that transformed largely rural, agrarian societies in Europe and America into industrialized, urban ones. It was a time of immense technological and social change."},
		},
		Related:   []string{"artificial-intelligence", "internet-history"},
		Views:     1100,
		CreatedAt: mustTime("2023-10-10T11:00:00Z"),
	},
	{
		ID:         "egyptian-pharaohs",
		CategoryID: "history",
		Title:      "Gods Among Men",
		Summary:    "The divine rulers of Ancient Egypt and the pyramids they left behind.",
		ColorTheme: "#ffca80",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The pharaohs of Ancient Egypt were the political and religious leaders of the people. Considered gods on Earth, they held immense power, commissioning vast temples and monumental tombs that have survived for millennia."},
		},
		Related:   []string{"ancient-rome", "ancient-greece"},
		Views:     1543,
		CreatedAt: mustTime("2023-08-25T15:00:00Z"),
	},
	{
		ID:         "renaissance-art",
		CategoryID: "art",
		Title:      "The Renaissance",
		Summary:    "A fervent period of European cultural, artistic, political and economic “rebirth” following the Middle Ages.",
		ColorTheme: "#f472b6",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The Renaissance was a period of profound cultural change, witnessing a flowering of literature, science, art, religion, and politics. Artists like Leonardo da Vinci and Michelangelo created works that are still revered centuries later."},
		},
		Related:   []string{"ancient-greece", "impressionism", "surrealism"},
		Views:     980,
		CreatedAt: mustTime("2023-08-20T11:00:00Z"),
	},
	{
		ID:         "impressionism",
		CategoryID: "art",
		Title:      "Capturing Light",
		Summary:    "The 19th-century art movement characterized by visible brush strokes and an emphasis on light.",
		ColorTheme: "#f472b6",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Impressionism is a 19th-century art movement characterized by relatively small, thin, yet visible brush strokes, open composition, emphasis on accurate depiction of light in its changing qualities, ordinary subject matter, and inclusion of movement as a crucial element of human perception and experience."},
		},
		Related:   []string{"renaissance-art", "surrealism"},
		Views:     820,
		CreatedAt: mustTime("2023-09-28T13:00:00Z"),
	},
	{
		ID:         "surrealism",
		CategoryID: "art",
		Title:      "The Art of Dreams",
		Summary:    "Unlocking the creative potential of the unconscious mind.",
		ColorTheme: "#f472b6",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Surrealism was a cultural movement which developed in Europe in the aftermath of World War I and was largely influenced by Dada. The movement is best known for its visual artworks and writings, which sought to channel the unconscious as a means to unlock the power of the imagination."},
		},
		Related:   []string{"impressionism", "existentialism"},
		Views:     1050,
		CreatedAt: mustTime("2023-10-18T17:00:00Z"),
	},
	{
		ID:         "artificial-intelligence",
		CategoryID: "technology",
		Title:      "Artificial Intelligence",
		Summary:    "The quest to create machines that can think, learn, and adapt like humans.",
		ColorTheme: "#64748b",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Artificial intelligence (AI) is rapidly transforming our world, from automating complex tasks to enabling new discoveries in science and medicine. The field is broadly divided into narrow AI, which is designed for a particular task, and general AI, which possesses human-like cognitive abilities."},
		},
		Related:   []string{"internet-history", "blockchain-basics", "quantum-physics-101"},
		Views:     4510,
		CreatedAt: mustTime("2023-11-10T09:00:00Z"),
	},
	{
		ID:         "internet-history",
		CategoryID: "technology",
		Title:      "Weaving the World Wide Web",
		Summary:    "From a military experiment to a global network connecting humanity.",
		ColorTheme: "#64748b",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The internet began as ARPANET, a US military project in the 1960s to create a resilient communication network. It has since evolved into the global system of interconnected computer networks that we rely on for information, communication, and commerce today."},
		},
		Related:   []string{"artificial-intelligence", "blockchain-basics"},
		Views:     1300,
		CreatedAt: mustTime("2023-11-01T10:00:00Z"),
	},
	{
		ID:         "blockchain-basics",
		CategoryID: "technology",
		Title:      "The Decentralized Ledger",
		Summary:    "Understanding the revolutionary technology behind cryptocurrencies.",
		ColorTheme: "#64748b",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "A blockchain is a decentralized, distributed, and oftentimes public, digital ledger consisting of records called blocks that is used to record transactions across many computers so that any involved block cannot be altered retroactively, without the alteration of all subsequent blocks."},
		},
		Related:   []string{"internet-history", "artificial-intelligence"},
		Views:     1650,
		CreatedAt: mustTime("2023-11-08T14:00:00Z"),
	},
	{
		ID:         "stoicism",
		CategoryID: "philosophy",
		Title:      "The Art of Resilience",
		Summary:    "An ancient Greek school of philosophy founded at Athens by Zeno of Citium.",
		ColorTheme: "#34d399",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Stoicism teaches the development of self-control and fortitude as a means of overcoming destructive emotions. The philosophy holds that becoming a clear and unbiased thinker allows one to understand the universal reason (logos)."},
		},
		Related:   []string{"existentialism", "ancient-greece", "ancient-rome"},
		Views:     1400,
		CreatedAt: mustTime("2023-10-22T09:00:00Z"),
	},
	{
		ID:         "existentialism",
		CategoryID: "philosophy",
		Title:      "Freedom and Being",
		Summary:    "A form of philosophical inquiry that explores the problem of human existence.",
		ColorTheme: "#34d399",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "Existentialism posits that individuals are free and responsible for giving their own lives meaning. It emphasizes concepts such as freedom, authenticity, and the search for purpose in a meaningless world."},
		},
		Related:   []string{"stoicism", "surrealism"},
		Views:     1120,
		CreatedAt: mustTime("2023-10-28T10:00:00Z"),
	},
	{
		ID:         "black-holes",
		CategoryID: "space",
		Title:      "Black Holes",
		Summary:    "Journey to the edge of spacetime and discover the most enigmatic objects in the cosmos.",
		ColorTheme: "#a78bfa",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "A black hole is a region of spacetime where gravity is so strong that nothing—no particles or even light—can escape. The theory of general relativity predicts that a sufficiently compact mass can deform spacetime to form a black hole."},
			{Kind: BlockImage, Caption: "An artist's conception of a black hole's accretion disk."},
			{Kind: BlockQuote, Text: "The black hole teaches us that space can be crumpled like a piece of paper, but that it can be stretched and distorted, too.", Author: "Kip Thorne"},
		},
		Related:   []string{"quantum-physics-101", "theory-of-relativity", "exoplanets"},
		Views:     3102,
		CreatedAt: mustTime("2023-11-05T18:00:00Z"),
	},
	{
		ID:         "mars-exploration",
		CategoryID: "space",
		Title:      "The Red Planet",
		Summary:    "Chronicling humanity's ongoing quest to explore our planetary neighbor, Mars.",
		ColorTheme: "#a78bfa",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "The exploration of Mars has been a goal of numerous space agencies for decades. Rovers like Curiosity and Perseverance are on the surface, analyzing the planet's geology and climate, searching for signs of ancient life, and paving the way for future human missions."},
		},
		Related:   []string{"exoplanets", "black-holes"},
		Views:     1750,
		CreatedAt: mustTime("2023-11-12T12:00:00Z"),
	},
	{
		ID:         "exoplanets",
		CategoryID: "space",
		Title:      "Worlds Beyond Our Sun",
		Summary:    "The search for planets orbiting other stars in our galaxy.",
		ColorTheme: "#a78bfa",
		Content: []ContentBlock{
			{Kind: BlockParagraph, Text: "An exoplanet is a planet outside the Solar System. The first confirmation of detection of an exoplanet occurred in 1992. Since then, thousands have been discovered, ranging from gas giants larger than Jupiter to rocky worlds that could potentially harbor life."},
		},
		Related:   []string{"mars-exploration", "theory-of-relativity"},
		Views:     2100,
		CreatedAt: mustTime("2023-11-18T15:00:00Z"),
	},
}
