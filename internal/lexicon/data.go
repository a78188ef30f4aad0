package lexicon

// Built-in reference lists. Order matters: fuzzy extractors break score ties
// by keeping the first entry encountered.

var defaultCategories = []string{
	// Electronics
	"smartphone", "laptop", "tablet", "smartwatch", "headphones", "earbuds",
	"tv", "printer", "monitor", "router", "camera", "gaming console", "projector", "power bank",

	// Home appliances
	"refrigerator", "washing machine", "microwave", "oven", "dishwasher", "air conditioner",
	"vacuum cleaner", "water purifier", "geyser", "air purifier", "induction cooktop", "ceiling fan",

	// Kitchen essentials
	"mixer grinder", "juicer", "electric kettle", "rice cooker", "toaster", "sandwich maker",
	"chimney", "coffee maker", "pressure cooker", "gas stove",

	// Furniture
	"study table", "office chair", "dining table", "sofa", "bed", "wardrobe",
	"bookshelf", "shoe rack", "tv unit", "recliner",

	// Personal care
	"trimmer", "hair dryer", "epilator", "electric toothbrush", "straightener", "massager",

	// Fitness and outdoors
	"treadmill", "exercise bike", "dumbbells", "yoga mat", "resistance band", "camping tent",

	// Baby products
	"baby stroller", "baby carrier", "crib", "diaper bag", "baby monitor", "baby high chair",

	// Travel and luggage
	"backpack", "duffle bag", "suitcase", "laptop bag", "trolley bag",

	// Miscellaneous
	"smart light", "security camera", "doorbell camera", "car charger", "bike helmet", "tool kit",
}

var defaultUseCases = []string{
	"gaming",
	"study",
	"office work",
	"work from home",
	"video editing",
	"photo editing",
	"content creation",
	"casual browsing",
	"travel",
	"photography",
	"videography",
	"music listening",
	"podcasting",
	"audio editing",
	"watching movies",
	"streaming videos",
	"home entertainment",
	"reading",
	"e-book reading",
	"social networking",
	"video conferencing",
	"online shopping",
	"online learning",
	"remote work",
	"household chores",
	"cooking",
	"music production",
	"movie watching",
	"streaming",
	"binge watching",
	"smart home automation",
	"fitness tracking",
	"health monitoring",
	"home workout",
	"outdoor activities",
	"vlogging",
	"social media",
	"online classes",
	"school use",
	"college use",
	"corporate use",
	"presentations",
	"remote meetings",
	"television entertainment",
	"kitchen cooking",
	"meal prep",
	"food storage",
	"food heating",
	"grooming",
	"beard trimming",
	"hair styling",
	"shaving",
	"personal care",
	"sleep monitoring",
	"security monitoring",
	"baby monitoring",
	"air purification",
	"cooling",
	"heating",
	"clothes drying",
	"dishwashing",
	"coffee brewing",
	"juicing",
	"blending",
	"baking",
	"grilling",
	"student use",
	"professional use",
	"freelancing",
	"budget shopping",
	"premium experience",
	"basic daily use",
	"compact living",
	"large household use",
	"gift purpose",
	"elderly use",
	"children use",
	"tech experimentation",
	"event hosting",
	"guest room setup",
	"portable entertainment",
}

var defaultFeatures = []string{
	// Smartphones
	"long battery life", "fast charging", "high-resolution camera", "5G support", "expandable storage",
	"good for gaming", "amoled display", "high refresh rate", "dual SIM", "water resistant",
	"wireless charging", "lightweight", "latest processor", "large screen",

	// Laptops
	"ssd storage", "backlit keyboard", "touchscreen", "good graphics", "high RAM",
	"i5 processor", "i7 processor", "dedicated GPU", "fast boot", "fingerprint sensor",
	"metal build", "usb-c charging", "thin and light",

	// Headphones and audio
	"noise cancellation", "wireless", "bluetooth 5.0", "deep bass", "in-ear fit", "over-ear comfort",
	"sweat resistant", "touch controls", "voice assistant support",

	// TVs
	"smart tv", "4k resolution", "oled panel", "android tv", "voice control", "multiple HDMI ports",
	"dolby audio", "large screen size", "frameless design", "wall mountable",

	// Refrigerators
	"double door", "inverter technology", "energy efficient", "frost free", "convertible freezer",
	"water dispenser", "toughened glass shelves", "fast cooling",

	// Air conditioners
	"inverter AC", "energy saving", "copper condenser", "low noise", "dust filter",
	"dehumidifier mode", "auto-clean", "stabilizer free",

	// Washing machines
	"front load", "top load", "inverter motor", "auto restart", "quick wash", "smart diagnosis",
	"low water usage", "child lock",

	// Kitchen appliances
	"auto shut off", "non-stick coating", "bpa free", "multi-function", "easy cleaning", "fast heating",
	"multiple speed levels", "compact design",

	// Grooming and wearables
	"skin friendly", "waterproof", "cordless", "multiple length settings",
	"sleep tracking", "heart rate monitor", "step counter", "spo2 monitor", "touch display",

	// Others
	"voice assistant", "smart connectivity", "multi-device sync", "portable", "durable build",
	"energy star certified", "low maintenance",
}

var defaultBrands = []string{
	"samsung", "apple", "xiaomi", "realme", "oppo", "vivo", "oneplus", "motorola", "nokia",
	"lenovo", "dell", "hp", "asus", "acer", "msi", "lg", "sony", "panasonic", "philips",
	"boat", "noise", "zebronics", "jbl", "bose", "marshall", "beats", "anker",
	"whirlpool", "haier", "voltas", "blue star", "hitachi", "daikin", "carrier",
	"bosch", "ifb", "godrej", "bajaj", "prestige", "kent", "eureka forbes",
	"dyson", "lifelong", "nova", "mi", "croma", "amazon basics", "intex", "onida", "micromax",
}
