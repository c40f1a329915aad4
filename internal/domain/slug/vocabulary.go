package slug

// Vocabularies are fixed at build time. Every word is lowercase ASCII so
// composed slugs always satisfy Pattern.

var adverbs = []string{
	"abruptly", "absently", "absurdly", "abundantly", "accidentally", "accurately",
	"actively", "acutely", "adeptly", "admirably", "adoringly", "adroitly", "affably",
	"affectionately", "aggressively", "agilely", "agreeably", "aimlessly", "airily",
	"alertly", "allegedly", "alluringly", "aloofly", "amazingly", "ambitiously",
	"amiably", "amicably", "amply", "amusingly", "angelically", "angrily", "anxiously",
	"apologetically", "appreciatively", "aptly", "ardently", "arrogantly", "artfully",
	"artistically", "assertively", "astutely", "attentively", "audaciously", "austerely",
	"avidly", "awkwardly", "badly", "baldly", "barely", "bashfully", "beautifully",
	"belatedly", "benevolently", "bitterly", "blandly", "blatantly", "blindly",
	"blissfully", "blithely", "bluntly", "boastfully", "boisterously", "boldly",
	"bountifully", "bravely", "breathlessly", "breezily", "briefly", "brightly",
	"brilliantly", "briskly", "broadly", "brusquely", "busily", "calmly", "candidly",
	"capably", "carefully", "carelessly", "casually", "cautiously", "ceaselessly",
	"certainly", "cheaply", "cheekily", "cheerfully", "cheerily", "childishly", "chirpily",
	"civilly", "clearly", "cleverly", "closely", "clumsily", "coaxingly", "cockily",
	"coldly", "comfortably", "comically", "commonly", "compactly", "competently",
	"completely", "confidently", "consciously", "considerately", "constantly",
	"contentedly", "continually", "coolly", "correctly", "courageously", "courteously",
	"covertly", "coyly", "crazily", "creatively", "crisply", "critically", "crossly",
	"crudely", "cruelly", "cunningly", "curiously", "curtly", "cutely", "daintily",
	"dangerously", "daringly", "darkly", "dashingly", "dearly", "decently", "decisively",
	"deeply", "defiantly", "deftly", "deliberately", "delicately", "delightfully",
	"demurely", "densely", "dependably", "desperately", "determinedly", "devotedly",
	"diligently", "dimly", "directly", "discreetly", "dizzily", "doggedly", "doubtfully",
	"dramatically", "dreamily", "drowsily", "dryly", "dutifully", "eagerly", "earnestly",
	"easily", "eccentrically", "ecstatically", "eerily", "effectively", "efficiently",
	"effortlessly", "elaborately", "elegantly", "eloquently", "eminently", "emphatically",
	"endlessly", "energetically", "enormously", "enthusiastically", "enviously",
	"equally", "ethically", "evenly", "evidently", "exactly", "excitedly", "exclusively",
	"expertly", "explicitly", "expressly", "exquisitely", "extravagantly", "exuberantly",
	"fabulously", "faintly", "fairly", "faithfully", "famously", "fancifully",
	"fantastically", "fastidiously", "ferociously", "fervently", "fiercely", "finally",
	"finely", "firmly", "fitfully", "flashily", "flatly", "flawlessly", "fleetingly",
	"flexibly", "fluently", "fluidly", "fondly", "foolishly", "forcefully", "formally",
	"fortunately", "frankly", "frantically", "freely", "frenetically", "frequently",
	"freshly", "fretfully", "frightfully", "frostily", "frugally", "fruitfully",
	"fully", "funnily", "furiously", "furtively", "generously", "genially", "gently",
	"genuinely", "giddily", "gingerly", "gladly", "gleefully", "glibly", "gloomily",
	"gloriously", "glowingly", "gracefully", "graciously", "gradually", "grandly",
	"gratefully", "gravely", "greatly", "greedily", "grimly", "grudgingly", "gruffly",
	"grumpily", "guiltily", "gustily", "habitually", "handily", "handsomely", "happily",
	"hastily", "heartily", "heavily", "heroically", "hesitantly", "highly", "hoarsely",
	"honestly", "honorably", "hopefully", "hotly", "hugely", "humbly", "humorously",
	"hungrily", "hurriedly", "icily", "ideally", "idly", "ignorantly", "illegally",
	"imaginatively", "immensely", "impartially", "impatiently", "impeccably", "impishly",
	"impressively", "impulsively", "inadvertently", "incessantly", "incredibly",
	"indignantly", "industriously", "inevitably", "infinitely", "informally", "innocently",
	"inquisitively", "insanely", "insistently", "instantly", "intensely", "intently",
	"intimately", "intricately", "inventively", "invisibly", "inwardly", "irately",
	"ironically", "jaggedly", "jauntily", "jealously", "jestingly", "jokingly", "jovially",
	"joyfully", "joyously", "jubilantly", "judiciously", "justly", "keenly", "kiddingly",
	"kindheartedly", "kindly", "knavishly", "knowingly", "laboriously", "lamely",
	"languidly", "largely", "lavishly", "lawfully", "lazily", "leisurely", "lightly",
	"likably", "limply", "lithely", "lively", "loftily", "longingly", "loosely",
	"loudly", "lovingly", "loyally", "lucidly", "luckily", "ludicrously", "lustily",
	"luxuriously", "madly", "magically", "magnificently", "majestically", "markedly",
	"marvelously", "meaningfully", "meekly", "melodically", "merrily", "messily",
	"methodically", "mightily", "mildly", "mindfully", "mirthfully", "miserably",
	"mockingly", "modestly", "momentarily", "monstrously", "moodily", "mortally",
	"mostly", "mournfully", "mysteriously", "naively", "namely", "narrowly", "naturally",
	"naughtily", "neatly", "needily", "nervously", "nicely", "nimbly", "nobly", "noisily",
	"nonchalantly", "normally", "notably", "obediently", "obligingly", "oddly",
	"officially", "openly", "optimistically", "orderly", "ornately", "outrageously",
	"outwardly", "overtly", "painfully", "painstakingly", "partially", "passionately",
	"patiently", "peacefully", "perfectly", "perkily", "persistently", "personally",
	"pertly", "pleasantly", "plainly", "playfully", "pleasingly", "pluckily", "poetically",
	"pointedly", "poignantly", "politely", "pompously", "poorly", "positively",
	"potently", "powerfully", "practically", "precisely", "precariously", "predictably",
	"presently", "pristinely", "privately", "proactively", "productively", "profoundly",
	"promptly", "properly", "proudly", "prudently", "publicly", "punctually", "purely",
	"purposefully", "puzzlingly", "quaintly", "queasily", "questioningly", "quickly",
	"quietly", "quirkily", "quixotically", "radiantly", "rakishly", "randomly",
	"rapidly", "rarely", "rashly", "readily", "really", "reassuringly", "recklessly",
	"regally", "regretfully", "reliably", "reluctantly", "remarkably", "repeatedly",
	"resolutely", "respectfully", "responsibly", "restfully", "restlessly", "reverently",
	"rhythmically", "richly", "righteously", "rightfully", "rigidly", "robustly",
	"romantically", "roughly", "roundly", "royally", "rudely", "ruefully", "ruthlessly",
	"sadly", "safely", "sagely", "sarcastically", "savagely", "scarcely", "scornfully",
	"searchingly", "secretly", "securely", "sedately", "seemingly", "selflessly",
	"sensibly", "sensitively", "serenely", "seriously", "sharply", "sheepishly",
	"shrewdly", "shrilly", "shyly", "silently", "simply", "sincerely", "singularly",
	"skillfully", "sleekly", "sleepily", "slowly", "slyly", "smartly", "smoothly",
	"smugly", "snappily", "sneakily", "snugly", "sociably", "softly", "solemnly",
	"solidly", "soothingly", "sorely", "sorrowfully", "soulfully", "soundly", "sparingly",
	"speedily", "spiritedly", "splendidly", "spontaneously", "sportingly", "spotlessly",
	"spryly", "squarely", "stably", "staunchly", "steadfastly", "steadily", "stealthily",
	"sternly", "stiffly", "stoically", "stormily", "stoutly", "straightly", "strangely",
	"strenuously", "strictly", "strikingly", "strongly", "stubbornly", "studiously",
	"stunningly", "sturdily", "stylishly", "suavely", "subtly", "successfully", "suddenly",
	"suitably", "sulkily", "sultrily", "superbly", "supremely", "surely", "surprisingly",
	"suspiciously", "sweetly", "swiftly", "sympathetically", "systematically",
	"tactfully", "tamely", "tartly", "tastefully", "tautly", "teasingly", "tediously",
	"tenderly", "tensely", "terribly", "thankfully", "thoroughly", "thoughtfully",
	"thriftily", "tightly", "timidly", "tirelessly", "tiredly", "tolerantly", "totally",
	"tranquilly", "treacherously", "tremendously", "trustingly", "truthfully", "tunefully",
	"typically", "unabashedly", "unbearably", "uncannily", "unceasingly", "understandably",
	"unerringly", "unexpectedly", "unfailingly", "unhappily", "uniformly", "uniquely",
	"unusually", "uprightly", "urgently", "usefully", "usually", "utterly", "vacantly",
	"vaguely", "vainly", "valiantly", "variously", "vastly", "vehemently", "verbally",
	"vibrantly", "viciously", "victoriously", "vigilantly", "vigorously", "violently",
	"virtuously", "visibly", "vitally", "vivaciously", "vividly", "vocally", "voluntarily",
	"warily", "warmly", "wastefully", "watchfully", "weakly", "wearily", "weirdly",
	"wholeheartedly", "wickedly", "widely", "wildly", "willfully", "willingly",
	"wisely", "wistfully", "wittily", "woefully", "wonderfully", "wordlessly",
	"worriedly", "wrathfully", "wrongly", "wryly", "yearningly", "youthfully",
	"zanily", "zealously", "zestfully", "zippily", "boundlessly", "brazenly",
	"buoyantly", "capriciously", "charmingly", "chivalrously", "cozily", "crankily",
	"dauntlessly", "dazzlingly", "demonstrably", "diplomatically", "dolefully", "drolly",
	"dynamically", "exceptionally", "fearlessly", "festively", "fiendishly", "gallantly",
	"gleamingly", "gloatingly", "gushingly", "harmoniously", "hauntingly", "heedlessly",
	"hilariously", "hospitably", "huffily", "hypnotically", "idyllically", "illustriously",
	"immaculately", "jadedly", "jarringly", "jitterily", "jocularly", "lankily",
	"lucratively", "lyrically", "magnanimously", "meticulously", "mischievously",
	"nostalgically", "observantly", "obstinately", "opulently", "patriotically",
	"peculiarly", "pensively", "perceptively", "persuasively", "placidly", "plausibly",
	"prettily", "primly", "prodigiously", "quizzically", "rapturously", "ravenously",
	"raucously", "reflectively", "relentlessly", "resourcefully", "reverentially",
	"ridiculously", "rowdily", "sassily", "scrappily", "serendipitously", "shakily",
	"shimmeringly", "snootily", "spectacularly", "sprightly", "stately", "steamily",
	"succinctly", "sunnily", "tantalizingly", "tenaciously", "thrillingly", "tidily",
	"triumphantly", "unflinchingly", "valorously", "venturously", "whimsically",
	"winsomely", "wittingly", "wondrously",
}

var verbs = []string{
	"accept", "ache", "achieve", "acquire", "act", "adapt", "add", "adjust", "admire",
	"admit", "adopt", "advance", "advise", "affirm", "agree", "aim", "alert", "align",
	"allow", "alter", "amaze", "amble", "amuse", "analyze", "anchor", "animate",
	"announce", "answer", "anticipate", "appear", "applaud", "apply", "approach",
	"approve", "argue", "arise", "arrange", "arrive", "ascend", "ask", "assemble",
	"assert", "assess", "assist", "assume", "attach", "attack", "attempt", "attend",
	"attract", "audit", "avoid", "awake", "babble", "bake", "balance", "bang", "bargain",
	"bark", "barter", "bask", "bathe", "battle", "beam", "bear", "beat", "beckon",
	"become", "beg", "begin", "behave", "belong", "bend", "bet", "bid", "bind", "bite",
	"blast", "blaze", "bleach", "blend", "bless", "blink", "bloom", "blossom", "blow",
	"blush", "boast", "bob", "boil", "bolt", "bond", "boogie", "boost", "borrow",
	"bounce", "bow", "box", "brace", "brag", "braid", "brake", "branch", "brave",
	"brew", "bridge", "brighten", "bring", "broadcast", "browse", "brush", "bubble",
	"buckle", "budge", "build", "bump", "bunk", "burrow", "burst", "bury", "bustle",
	"buy", "buzz", "calculate", "call", "camp", "canter", "capture", "care", "carry",
	"carve", "cast", "catch", "cause", "celebrate", "challenge", "change", "charge",
	"chart", "chase", "chat", "cheer", "chew", "chill", "chime", "chirp", "choose",
	"chop", "chuckle", "circle", "claim", "clamber", "clap", "clash", "clasp", "clatter",
	"clean", "clear", "click", "climb", "cling", "clip", "close", "coach", "coast",
	"collect", "comb", "combine", "come", "comfort", "command", "compare", "compete",
	"compile", "complain", "complete", "compose", "compute", "concede", "concentrate",
	"conduct", "confess", "confide", "confirm", "connect", "conquer", "consider",
	"construct", "consult", "contain", "continue", "contribute", "convert", "convey",
	"cook", "cooperate", "coordinate", "cope", "copy", "correct", "count", "cover",
	"crack", "cradle", "craft", "crash", "crawl", "create", "creep", "critique", "crouch",
	"crowd", "crunch", "cruise", "crush", "cry", "cuddle", "cultivate", "curl", "curve",
	"cycle", "dab", "dabble", "dance", "dare", "dart", "dash", "dazzle", "deal", "debate",
	"decide", "declare", "decorate", "dedicate", "defend", "define", "delight", "deliver",
	"demand", "depart", "depend", "describe", "deserve", "design", "detect", "develop",
	"devise", "devour", "dial", "dig", "dine", "direct", "discover", "dissolve", "dive",
	"divide", "dodge", "doodle", "double", "drag", "drain", "draw", "dream", "dress",
	"drift", "drill", "drink", "drip", "drive", "drop", "drum", "dry", "duck", "duel",
	"dunk", "dust", "dwell", "earn", "ease", "eat", "echo", "edit", "educate", "elect",
	"embark", "embrace", "emerge", "employ", "enchant", "encourage", "end", "endure",
	"engage", "engineer", "enjoy", "enlist", "enter", "entertain", "escape", "establish",
	"estimate", "evaluate", "evolve", "examine", "exceed", "excel", "exchange", "excite",
	"exercise", "exhale", "exist", "expand", "expect", "explain", "explode", "explore",
	"express", "extend", "fade", "fasten", "favor", "fear", "feast", "feed", "feel",
	"fence", "fetch", "fiddle", "fight", "file", "fill", "film", "find", "finish", "fish",
	"fit", "fix", "flap", "flash", "flee", "flick", "fling", "flip", "float", "flock",
	"flood", "flop", "flourish", "flow", "flutter", "fly", "focus", "fold", "follow",
	"forage", "forge", "forgive", "form", "frame", "free", "frolic", "frown", "fry",
	"fumble", "gallop", "gamble", "garden", "gather", "gaze", "generate", "giggle", "give",
	"glance", "glare", "gleam", "glide", "glimmer", "glisten", "glitter", "glow", "gnaw",
	"go", "gobble", "govern", "grab", "grasp", "graze", "greet", "grin", "grind", "grip",
	"groan", "groom", "grow", "growl", "grumble", "grunt", "guard", "guess", "guide",
	"gulp", "gush", "hammer", "handle", "hang", "happen", "harvest", "hatch", "haul",
	"have", "heal", "hear", "heave", "help", "herd", "hide", "hike", "hire", "hiss",
	"hit", "hoist", "hold", "hop", "hope", "host", "hover", "howl", "huddle", "hug",
	"hum", "hunt", "hurry", "hurtle", "hustle", "identify", "ignite", "illustrate",
	"imagine", "imitate", "impress", "improve", "improvise", "include", "increase",
	"inform", "inhale", "inspect", "inspire", "install", "instruct", "intend", "interpret",
	"introduce", "invent", "investigate", "invite", "iron", "itch", "jab", "jam", "jingle",
	"jog", "join", "joke", "jostle", "judge", "juggle", "jump", "justify", "keep", "kick",
	"kindle", "kiss", "knead", "kneel", "knit", "knock", "know", "label", "land", "lap",
	"lasso", "last", "laugh", "launch", "lead", "leap", "learn", "leave", "lend", "level",
	"lick", "lift", "light", "limp", "linger", "link", "list", "listen", "live", "load",
	"locate", "lock", "lodge", "look", "loop", "lounge", "love", "lug", "lunge", "lurk",
	"make", "manage", "march", "mark", "marvel", "match", "measure", "meander", "meet",
	"melt", "mend", "mentor", "merge", "migrate", "mimic", "mingle", "mix", "moan",
	"model", "mold", "monitor", "motivate", "mount", "move", "mow", "mumble", "munch",
	"muse", "mutter", "nab", "nag", "nap", "navigate", "negotiate", "nest", "nibble",
	"nod", "notice", "nudge", "nurture", "obey", "observe", "obtain", "offer", "open",
	"operate", "orbit", "order", "organize", "orient", "outrun", "overcome", "own", "pack",
	"paddle", "paint", "pamper", "parade", "park", "participate", "pass", "paste", "pat",
	"patrol", "pause", "pave", "peck", "pedal", "peek", "peel", "peer", "perch", "perform",
	"persist", "persuade", "pick", "picnic", "pilot", "pinch", "ping", "pitch", "place",
	"plan", "plant", "play", "plead", "please", "plod", "plot", "plow", "pluck",
	"plunge", "point", "poke", "polish", "ponder", "pop", "pose", "pounce", "pour",
	"pout", "practice", "praise", "prance", "pray", "preach", "predict", "prefer",
	"prepare", "present", "preserve", "press", "pretend", "prevail", "prick", "print",
	"prize", "probe", "proceed", "produce", "program", "promise", "promote", "propel",
	"protect", "provide", "prowl", "prune", "pry", "pull", "pummel", "pump", "punch",
	"punt", "purr", "pursue", "push", "puzzle", "quack", "qualify", "quench", "question",
	"quibble", "quiver", "quote", "race", "radiate", "rally", "ramble", "ranch", "rank",
	"rap", "rattle", "reach", "read", "realize", "reason", "rebound", "recall", "receive",
	"recite", "recommend", "record", "recover", "recruit", "recycle", "reflect", "refresh",
	"regret", "rehearse", "reign", "rejoice", "relax", "release", "rely", "remain",
	"remember", "remind", "render", "renew", "repair", "repeat", "replace", "reply",
	"report", "rescue", "reside", "resolve", "respond", "rest", "restore", "retire",
	"retreat", "return", "reveal", "review", "revise", "reward", "rhyme", "ride", "ring",
	"rinse", "rise", "roam", "roar", "roast", "rock", "roll", "romp", "rotate", "row",
	"rub", "rule", "rumble", "run", "rush", "sail", "salute", "sample", "satisfy",
	"saunter", "save", "savor", "saw", "say", "scamper", "scan", "scatter", "schedule",
	"scheme", "scold", "scoop", "scoot", "score", "scout", "scrape", "scratch", "scream",
	"scribble", "scrub", "scurry", "search", "secure", "see", "seek", "seize", "select",
	"sell", "send", "sense", "serve", "settle", "sew", "shake", "shape", "share",
	"sharpen", "shave", "shear", "shelter", "shift", "shimmer", "shine", "shiver",
	"shop", "shout", "shove", "show", "shower", "shred", "shriek", "shrug", "shuffle",
	"sift", "sigh", "sign", "signal", "simmer", "sing", "sink", "sip", "sit", "sketch",
	"skate", "ski", "skid", "skim", "skip", "slam", "slay", "sled", "sleep", "slice",
	"slide", "slip", "slither", "slouch", "slurp", "smash", "smell", "smile", "smirk",
	"snack", "snap", "snatch", "sneak", "sneeze", "sniff", "snooze", "snore", "snorkel",
	"snuggle", "soak", "soar", "solve", "soothe", "sort", "sow", "spark", "sparkle",
	"speak", "spell", "spend", "spill", "spin", "splash", "split", "spoil", "sponsor",
	"spot", "sprawl", "spray", "spread", "spring", "sprint", "sprout", "spy", "squash",
	"squeak", "squeeze", "squint", "stack", "stage", "stagger", "stalk", "stamp",
	"stand", "stare", "start", "startle", "stay", "steer", "step", "stir", "stitch",
	"stomp", "stop", "store", "stretch", "stride", "strike", "string", "stroll", "strum",
	"strut", "study", "stumble", "succeed", "suggest", "summon", "supply", "support",
	"surf", "surprise", "survey", "survive", "swap", "sway", "sweep", "swim", "swing",
	"swirl", "swoop", "tackle", "tag", "talk", "tame", "tap", "taste", "teach", "tease",
	"tend", "test", "thank", "think", "thrill", "thrive", "throw", "thump", "tickle",
	"tidy", "tie", "tinker", "tip", "tiptoe", "toast", "toddle", "toss", "totter",
	"touch", "tour", "tow", "trace", "track", "trade", "train", "transform", "trap",
	"travel", "tread", "treat", "trek", "trim", "trip", "trot", "trust", "try", "tug",
	"tumble", "tune", "turn", "tutor", "twirl", "twist", "type", "uncover", "understand",
	"undo", "unfold", "unite", "unlock", "unpack", "untie", "unwind", "update", "uphold",
	"urge", "use", "vanish", "vault", "venture", "verify", "vibrate", "view", "visit",
	"volunteer", "vote", "voyage", "wade", "waddle", "wag", "wait", "wake", "walk",
	"wander", "want", "warble", "warm", "warn", "wash", "watch", "water", "wave", "weave",
	"weigh", "welcome", "whip", "whirl", "whisk", "whisper", "whistle", "wiggle", "win",
	"wink", "wish", "wobble", "wonder", "work", "worry", "wrap", "wrestle", "wriggle",
	"write", "yawn", "yearn", "yell", "yelp", "yodel", "zap", "zigzag", "zip", "zoom",
}

var animals = []string{
	"aardvark", "aardwolf", "adder", "addax", "agouti", "albatross", "alligator", "alpaca",
	"anaconda", "anchovy", "angelfish", "anole", "ant", "anteater", "antelope", "ape",
	"armadillo", "asp", "auk", "avocet", "axolotl", "baboon", "badger", "bandicoot",
	"barnacle", "barracuda", "basilisk", "bass", "bat", "beagle", "bear", "beaver",
	"bee", "beetle", "beluga", "bilby", "binturong", "bison", "bittern", "blackbird",
	"bluebird", "bluegill", "boa", "boar", "bobcat", "bobolink", "bonobo", "booby",
	"boxfish", "buffalo", "bulldog", "bullfrog", "bumblebee", "bunting", "burbot",
	"bushbaby", "bustard", "butterfly", "buzzard", "caiman", "camel", "canary", "capybara",
	"caracal", "cardinal", "caribou", "carp", "cassowary", "cat", "caterpillar", "catfish",
	"cattle", "centipede", "chameleon", "chamois", "cheetah", "chickadee", "chicken",
	"chihuahua", "chimpanzee", "chinchilla", "chipmunk", "chough", "cicada", "cichlid",
	"civet", "clam", "clownfish", "cobra", "cockatiel", "cockatoo", "cockroach", "cod",
	"condor", "coot", "copperhead", "coral", "cormorant", "cougar", "cow", "coyote",
	"crab", "crane", "crayfish", "cricket", "crocodile", "crow", "cuckoo", "curlew",
	"cuttlefish", "dachshund", "damselfly", "deer", "dhole", "dingo", "dinosaur",
	"dodo", "dog", "dolphin", "donkey", "dormouse", "dotterel", "dove", "dragonfly",
	"drake", "dromedary", "duck", "dugong", "dunlin", "eagle", "earthworm", "earwig",
	"echidna", "eel", "egret", "eider", "eland", "elephant", "elk", "emu", "ermine",
	"falcon", "ferret", "finch", "firefly", "flamingo", "flea", "flounder", "fly",
	"flycatcher", "fossa", "fox", "frog", "fulmar", "gannet", "gar", "gazelle",
	"gecko", "gerbil", "gerenuk", "gharial", "gibbon", "giraffe", "gnat", "gnu", "goat",
	"goby", "godwit", "goldfinch", "goldfish", "goose", "gopher", "gorilla", "goshawk",
	"grackle", "grasshopper", "grebe", "greyhound", "grizzly", "grouse", "grub", "guanaco",
	"guillemot", "guineafowl", "gull", "guppy", "haddock", "hagfish", "halibut", "hamster",
	"hare", "harrier", "hawk", "hedgehog", "heron", "herring", "hippo", "hoatzin", "hog",
	"hoopoe", "hornbill", "hornet", "horse", "hound", "hummingbird", "husky", "hyena",
	"ibex", "ibis", "iguana", "impala", "jacana", "jackal", "jackdaw", "jackrabbit",
	"jaguar", "jay", "jellyfish", "jerboa", "kakapo", "kangaroo", "katydid", "kea",
	"kestrel", "killdeer", "kingfisher", "kinkajou", "kite", "kiwi", "koala", "koi",
	"kookaburra", "krill", "kudu", "ladybug", "lamprey", "lapwing", "lark", "lemming",
	"lemur", "leopard", "liger", "limpet", "lion", "lionfish", "lizard", "llama",
	"lobster", "locust", "loon", "loris", "lory", "lynx", "lyrebird", "macaque", "macaw",
	"mackerel", "magpie", "mallard", "mamba", "manatee", "mandrill", "manta", "mantis",
	"marlin", "marmot", "marten", "meerkat", "merganser", "merlin", "mink", "minnow",
	"mole", "mollusk", "mongoose", "monkey", "moose", "mosquito", "moth", "mouse",
	"mudskipper", "mule", "muskox", "muskrat", "mussel", "mustang", "narwhal", "newt",
	"nighthawk", "nightingale", "numbat", "nuthatch", "ocelot", "octopus", "okapi",
	"opossum", "orangutan", "orca", "oriole", "oryx", "osprey", "ostrich", "otter", "owl",
	"ox", "oyster", "panda", "pangolin", "panther", "parakeet", "parrot", "partridge",
	"peacock", "pelican", "penguin", "perch", "peregrine", "petrel", "pheasant", "pig",
	"pigeon", "pika", "pike", "piranha", "platypus", "plover", "polecat", "pony", "poodle",
	"porcupine", "porpoise", "possum", "prawn", "puffin", "pug", "puma", "python", "quail",
	"quetzal", "quokka", "quoll", "rabbit", "raccoon", "ram", "rat", "rattlesnake",
	"raven", "ray", "redstart", "reindeer", "rhea", "rhino", "roadrunner", "robin", "rook",
	"rooster", "sailfish", "salamander", "salmon", "sandpiper", "sardine", "scallop",
	"scorpion", "seahorse", "seal", "serval", "shark", "sheep", "shrew", "shrimp",
	"siamang", "skate", "skink", "skunk", "skylark", "sloth", "slug", "snail", "snake",
	"snapper", "snipe", "sparrow", "spider", "sponge", "squid", "squirrel", "starfish",
	"starling", "stingray", "stoat", "stork", "sturgeon", "sunbird", "swallow", "swan",
	"swift", "swordfish", "tamarin", "tanager", "tapir", "tarantula", "tarpon", "tarsier",
	"termite", "tern", "terrapin", "thrush", "tiger", "tilapia", "toad", "tortoise",
	"toucan", "trout", "tuna", "turkey", "turtle", "uakari", "urchin", "vicuna", "viper",
	"vole", "vulture", "wallaby", "walrus", "warbler", "warthog", "wasp", "weasel",
	"weevil", "whale", "whippet", "wildcat", "wildebeest", "wolf", "wolverine", "wombat",
	"woodchuck", "woodcock", "woodpecker", "worm", "wren", "yak", "zebra", "zebu",
	"albacore", "alewife", "amberjack", "anglerfish", "angora", "anhinga", "appaloosa",
	"argali", "axis", "babirusa", "bagworm", "banteng", "barbet", "barbel", "basenji",
	"bateleur", "bettong", "bichon", "blenny", "bloodhound", "blowfish", "bluefin",
	"bluejay", "bongo", "bontebok", "borzoi", "bowerbird", "brambling", "bream", "brolga",
	"budgie", "bullfinch", "bullhead", "bulbul", "bushbuck", "bushpig", "caracara",
	"cavy", "chaffinch", "char", "chital", "chukar", "coati", "coelacanth", "colobus",
	"conch", "corgi", "cowbird", "crappie", "crossbill", "cuscus", "dabchick", "dace",
	"dalmatian", "dassie", "degu", "dikdik", "dipper", "dogfish", "drongo", "duiker",
	"eelpout", "egretta", "escolar", "fennec", "fieldfare", "firecrest", "flatfish",
	"galago", "gadwall", "gaur", "gemsbok", "genet", "goldcrest", "goral", "gourami",
	"grayling", "greenfinch", "grison", "grosbeak", "grunion", "guenon", "hartebeest",
	"hawfinch", "hyrax", "jabiru", "kagu", "kiang", "killifish", "kingbird",
	"klipspringer", "kowari", "lancetfish", "langur", "lechwe", "linnet", "lungfish",
	"mahseer", "mangabey", "margay", "markhor", "marmoset", "menhaden", "mockingbird",
	"moorhen", "mouflon", "muntjac", "myna", "nandu", "needlefish", "nilgai", "noddy",
	"nyala", "oilbird", "olingo", "oncilla", "oribi", "ortolan", "ouzel", "paca",
	"pademelon", "paddlefish", "parrotfish", "peccary", "phalarope", "pipit", "pirarucu",
	"pollock", "pomfret", "potoo", "potto", "pronghorn", "ptarmigan", "pudu", "quagga",
	"quelea", "redpoll", "reedbuck", "remora", "rockfish", "sable", "saiga", "saki",
	"sanderling", "sawfish", "scaup", "scoter", "serow", "shad", "shoebill", "siskin",
	"sitatunga", "snook", "solenodon", "springbok", "steenbok", "stonefish", "sunfish",
	"suricate", "swiftlet", "tahr", "takin", "tarpan", "teal", "tenrec", "thornbill",
	"tinamou", "titi", "topi", "towhee", "treefrog", "triggerfish", "tuatara", "turaco",
	"vireo", "viscacha", "wahoo", "walleye", "wapiti", "waxwing", "weaverbird",
	"whimbrel", "whinchat", "wigeon", "wrasse", "wryneck", "xerus", "yellowhammer",
	"zander", "zorilla", "zorse",
}
