// Code generated data: sorted adverb list for prefix lookup.
// Grounded on mudlib/languagetools.py's soul_adverbs.txt data file.
package lang

// AdverbList is the sorted list of every adverb the soul parser recognises.
// It must stay sorted: AdverbByPrefix relies on binary search over it.
var AdverbList = []string{
	"abruptly",
	"absentmindedly",
	"absurdly",
	"accidentally",
	"actively",
	"admiringly",
	"adoringly",
	"aggressively",
	"angrily",
	"anxiously",
	"apologetically",
	"appreciatively",
	"awkwardly",
	"badly",
	"barely",
	"bashfully",
	"bitterly",
	"blankly",
	"blindly",
	"boldly",
	"bravely",
	"briefly",
	"brightly",
	"briskly",
	"brutally",
	"calmly",
	"carefully",
	"carelessly",
	"casually",
	"cautiously",
	"cheerfully",
	"clumsily",
	"coldly",
	"confidently",
	"confusedly",
	"coolly",
	"courageously",
	"coyly",
	"crazily",
	"cruelly",
	"curiously",
	"curtly",
	"dangerously",
	"defiantly",
	"deliberately",
	"delicately",
	"desperately",
	"determinedly",
	"devotedly",
	"dizzily",
	"doubtfully",
	"dramatically",
	"dreamily",
	"drowsily",
	"drunkenly",
	"dryly",
	"dully",
	"eagerly",
	"earnestly",
	"easily",
	"elegantly",
	"energetically",
	"enthusiastically",
	"enviously",
	"evilly",
	"excitedly",
	"fearfully",
	"fiercely",
	"firmly",
	"foolishly",
	"franticly",
	"freely",
	"frightfully",
	"generously",
	"gently",
	"gingerly",
	"gladly",
	"gleefully",
	"gracefully",
	"gratefully",
	"greedily",
	"grimly",
	"grudgingly",
	"gruffly",
	"happily",
	"harshly",
	"hastily",
	"heartily",
	"heavily",
	"helplessly",
	"hesitantly",
	"honestly",
	"hopefully",
	"hopelessly",
	"hungrily",
	"hurriedly",
	"impatiently",
	"innocently",
	"inquisitively",
	"intensely",
	"irritably",
	"jealously",
	"jokingly",
	"joyfully",
	"joyously",
	"jubilantly",
	"keenly",
	"kindly",
	"lazily",
	"lightly",
	"limply",
	"lividly",
	"longingly",
	"loosely",
	"loudly",
	"lovingly",
	"loyally",
	"madly",
	"meekly",
	"menacingly",
	"mercilessly",
	"merrily",
	"miserably",
	"mockingly",
	"mournfully",
	"nastily",
	"nervously",
	"noisily",
	"nonchalantly",
	"obediently",
	"obstinately",
	"openly",
	"optimistically",
	"painfully",
	"passionately",
	"patiently",
	"peacefully",
	"perfectly",
	"playfully",
	"pleasantly",
	"politely",
	"poorly",
	"precisely",
	"proudly",
	"quaintly",
	"queasily",
	"questioningly",
	"quickly",
	"quietly",
	"quirkily",
	"rapidly",
	"rarely",
	"readily",
	"really",
	"recklessly",
	"regretfully",
	"reluctantly",
	"repeatedly",
	"reproachfully",
	"resentfully",
	"restlessly",
	"rigidly",
	"roughly",
	"rudely",
	"ruthlessly",
	"sadly",
	"scornfully",
	"seductively",
	"selfishly",
	"sensibly",
	"seriously",
	"shakily",
	"sharply",
	"sheepishly",
	"shrilly",
	"shyly",
	"silently",
	"sillily",
	"sleepily",
	"slowly",
	"smugly",
	"snappishly",
	"softly",
	"solemnly",
	"soothingly",
	"sorrowfully",
	"sourly",
	"speedily",
	"stealthily",
	"sternly",
	"stiffly",
	"stubbornly",
	"suddenly",
	"sulkily",
	"sullenly",
	"suspiciously",
	"sweetly",
	"swiftly",
	"sympathetically",
	"tenderly",
	"tensely",
	"tentatively",
	"thankfully",
	"thoughtfully",
	"thoughtlessly",
	"tightly",
	"timidly",
	"tiredly",
	"triumphantly",
	"truthfully",
	"unabashedly",
	"uneasily",
	"unexpectedly",
	"unkindly",
	"urgently",
	"vacantly",
	"vaguely",
	"vainly",
	"vehemently",
	"viciously",
	"violently",
	"warily",
	"warmly",
	"weakly",
	"wearily",
	"wildly",
	"wistfully",
	"worriedly",
	"zealously",
}
