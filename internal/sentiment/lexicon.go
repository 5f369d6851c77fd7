package sentiment

// Word valences on the VADER scale (-4..4). A trimmed lexicon tuned for
// lodging and travel reviews; lookups are lowercase.
var lexicon = map[string]float64{
	"abysmal":       -3.1,
	"accommodating": 1.9,
	"ache":          -1.5,
	"admire":        2.2,
	"adorable":      2.2,
	"adore":         2.9,
	"affordable":    1.5,
	"afraid":        -2.0,
	"aggravating":   -2.1,
	"agreeable":     1.8,
	"amazing":       2.8,
	"amazed":        2.4,
	"angry":         -2.3,
	"annoyed":       -1.8,
	"annoying":      -1.9,
	"appalling":     -2.9,
	"appreciate":    1.9,
	"attentive":     1.8,
	"awesome":       3.1,
	"awful":         -2.0,
	"awkward":       -1.1,
	"bad":           -2.5,
	"beautiful":     2.9,
	"best":          3.2,
	"better":        1.9,
	"blame":         -1.4,
	"bland":         -1.0,
	"bliss":         2.7,
	"boring":        -1.3,
	"breathtaking":  3.2,
	"broke":         -1.6,
	"broken":        -1.9,
	"brilliant":     2.8,
	"bug":           -1.3,
	"bugs":          -1.3,
	"calm":          1.3,
	"careless":      -1.8,
	"charming":      2.4,
	"cheap":         0.4,
	"cheerful":      2.5,
	"clean":         1.7,
	"comfortable":   1.8,
	"comfy":         1.9,
	"complain":      -1.5,
	"complaint":     -1.4,
	"convenient":    1.6,
	"cozy":          1.9,
	"cramped":       -1.4,
	"creepy":        -2.0,
	"crowded":       -1.1,
	"cute":          2.0,
	"damage":        -1.8,
	"damaged":       -1.9,
	"damp":          -0.9,
	"dangerous":     -2.2,
	"dated":         -1.0,
	"dead":          -2.6,
	"decent":        1.2,
	"delicious":     2.6,
	"delight":       2.6,
	"delighted":     2.7,
	"delightful":    2.8,
	"depressing":    -2.2,
	"dirty":         -1.9,
	"disappoint":    -1.9,
	"disappointed":  -2.1,
	"disappointing": -2.2,
	"disaster":      -2.6,
	"disgusting":    -2.8,
	"dishonest":     -2.2,
	"dreadful":      -2.7,
	"dreary":        -1.5,
	"dull":          -1.2,
	"easy":          1.6,
	"elegant":       2.1,
	"enjoy":         2.0,
	"enjoyable":     2.2,
	"enjoyed":       2.1,
	"excellent":     2.7,
	"excited":       2.2,
	"exceptional":   2.6,
	"expensive":     -0.9,
	"fabulous":      2.7,
	"fail":          -2.2,
	"failed":        -2.1,
	"failure":       -2.3,
	"fair":          1.1,
	"fantastic":     2.6,
	"fast":          1.0,
	"faulty":        -1.9,
	"favorite":      2.0,
	"filthy":        -2.5,
	"fine":          0.8,
	"flawless":      2.7,
	"fraud":         -2.8,
	"fresh":         1.3,
	"friendly":      2.2,
	"frustrated":    -2.1,
	"frustrating":   -2.1,
	"fun":           2.3,
	"generous":      2.2,
	"gentle":        1.6,
	"glad":          2.0,
	"gloomy":        -1.6,
	"good":          1.9,
	"gorgeous":      2.8,
	"gracious":      2.1,
	"great":         3.1,
	"gross":         -2.1,
	"happy":         2.7,
	"hate":          -2.7,
	"hated":         -2.6,
	"heaven":        2.3,
	"hell":          -2.6,
	"helpful":       1.8,
	"honest":        2.0,
	"horrible":      -2.5,
	"horrendous":    -2.8,
	"hospitable":    2.0,
	"hostile":       -2.2,
	"ideal":         2.3,
	"immaculate":    2.4,
	"impressed":     2.2,
	"impressive":    2.3,
	"incompetent":   -2.3,
	"incredible":    2.6,
	"inconvenient":  -1.6,
	"inexcusable":   -2.4,
	"insult":        -2.2,
	"insulting":     -2.3,
	"inviting":      1.9,
	"joke":          -0.8,
	"joy":           2.8,
	"kind":          2.4,
	"lacking":       -1.3,
	"lazy":          -1.5,
	"leak":          -1.4,
	"liar":          -2.6,
	"like":          1.5,
	"liked":         1.7,
	"lively":        1.9,
	"lonely":        -1.7,
	"lost":          -1.3,
	"loud":          -1.1,
	"love":          3.2,
	"loved":         2.9,
	"lovely":        2.8,
	"lucky":         1.8,
	"luxurious":     2.4,
	"luxury":        2.1,
	"mediocre":      -0.9,
	"mess":          -1.6,
	"messy":         -1.5,
	"miserable":     -2.4,
	"mistake":       -1.6,
	"moldy":         -2.2,
	"neat":          1.6,
	"neglect":       -1.9,
	"neglected":     -2.0,
	"nice":          1.8,
	"nightmare":     -2.6,
	"noisy":         -1.4,
	"obnoxious":     -2.2,
	"odor":          -1.2,
	"okay":          0.9,
	"outdated":      -1.1,
	"outstanding":   3.0,
	"overpriced":    -1.8,
	"paradise":      2.8,
	"peaceful":      2.0,
	"perfect":       2.7,
	"perfectly":     2.6,
	"pleasant":      2.2,
	"pleased":       2.1,
	"pleasure":      2.5,
	"polite":        1.9,
	"poor":          -2.1,
	"pretty":        2.1,
	"problem":       -1.5,
	"problems":      -1.5,
	"prompt":        1.4,
	"quaint":        1.3,
	"quiet":         1.0,
	"recommend":     1.8,
	"recommended":   1.9,
	"refund":        -0.8,
	"regret":        -2.0,
	"relaxing":      2.1,
	"reliable":      1.9,
	"remarkable":    2.4,
	"responsive":    1.6,
	"rude":          -2.4,
	"ruin":          -2.1,
	"ruined":        -2.2,
	"rusty":         -1.1,
	"sad":           -2.1,
	"safe":          1.6,
	"satisfied":     2.0,
	"scam":          -2.8,
	"scared":        -2.0,
	"shabby":        -1.6,
	"shame":         -1.9,
	"shiny":         1.2,
	"shocking":      -1.8,
	"sketchy":       -1.7,
	"slow":          -1.2,
	"smell":         -1.0,
	"smelly":        -2.0,
	"smooth":        1.5,
	"spacious":      1.8,
	"special":       1.7,
	"spectacular":   2.9,
	"spotless":      2.2,
	"stain":         -1.5,
	"stained":       -1.6,
	"stale":         -1.4,
	"stellar":       2.6,
	"stink":         -2.1,
	"stress":        -1.8,
	"stressful":     -1.9,
	"stunning":      2.9,
	"stylish":       1.8,
	"suck":          -2.0,
	"sucked":        -2.1,
	"sucks":         -2.2,
	"super":         2.9,
	"superb":        3.0,
	"sweet":         2.0,
	"terrible":      -2.1,
	"terrific":      2.7,
	"thank":         1.8,
	"thanks":        1.9,
	"thoughtful":    2.1,
	"tidy":          1.5,
	"tired":         -1.2,
	"trash":         -2.0,
	"trouble":       -1.7,
	"ugly":          -2.2,
	"unacceptable":  -2.2,
	"unclean":       -1.9,
	"uncomfortable": -1.8,
	"unfortunate":   -1.7,
	"unfriendly":    -2.0,
	"unhappy":       -2.0,
	"unhelpful":     -1.9,
	"unpleasant":    -2.0,
	"unprofessional": -2.1,
	"unreliable":    -1.9,
	"unsafe":        -2.1,
	"upset":         -1.9,
	"useless":       -1.9,
	"value":         1.3,
	"vibrant":       1.9,
	"warm":          1.6,
	"waste":         -1.9,
	"weird":         -0.9,
	"welcome":       2.0,
	"welcoming":     2.1,
	"well":          1.1,
	"wonderful":     2.7,
	"worn":          -1.0,
	"worst":         -3.1,
	"worth":         0.9,
	"worthless":     -2.3,
	"wow":           2.8,
	"wrong":         -1.7,
	"yuck":          -2.3,
}

// Degree modifiers. Positive scalars intensify the following word's valence,
// negative scalars dampen it.
var boosters = map[string]float64{
	"absolutely":   0.293,
	"amazingly":    0.293,
	"completely":   0.293,
	"considerably": 0.293,
	"decidedly":    0.293,
	"deeply":       0.293,
	"especially":   0.293,
	"exceptionally": 0.293,
	"extremely":    0.293,
	"fairly":       -0.293,
	"highly":       0.293,
	"hugely":       0.293,
	"incredibly":   0.293,
	"intensely":    0.293,
	"kinda":        -0.293,
	"kindof":       -0.293,
	"less":         -0.293,
	"little":       -0.293,
	"marginally":   -0.293,
	"mostly":       0.107,
	"particularly": 0.293,
	"purely":       0.293,
	"quite":        0.293,
	"really":       0.293,
	"remarkably":   0.293,
	"slightly":     -0.293,
	"so":           0.293,
	"somewhat":     -0.293,
	"sorta":        -0.293,
	"thoroughly":   0.293,
	"totally":      0.293,
	"truly":        0.293,
	"utterly":      0.293,
	"very":         0.293,
}

var negations = map[string]struct{}{
	"aint":    {},
	"ain't":   {},
	"cannot":  {},
	"cant":    {},
	"can't":   {},
	"didnt":   {},
	"didn't":  {},
	"doesnt":  {},
	"doesn't": {},
	"dont":    {},
	"don't":   {},
	"hardly":  {},
	"isnt":    {},
	"isn't":   {},
	"lack":    {},
	"lacks":   {},
	"neither": {},
	"never":   {},
	"no":      {},
	"nobody":  {},
	"none":    {},
	"nope":    {},
	"nor":     {},
	"not":     {},
	"nothing": {},
	"nowhere": {},
	"rarely":  {},
	"wasnt":   {},
	"wasn't":  {},
	"without": {},
	"wont":    {},
	"won't":   {},
	"wouldnt": {},
	"wouldn't": {},
}
