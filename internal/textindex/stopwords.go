package textindex

import "strings"

// englishStopWords is the standard stop-word list applied to job-posting
// corpora. Career catalogs are small and curated, so they skip it.
var englishStopWords = buildStopWords(
	"the a an and or but in on at to for of with by from as is was are were been " +
		"be have has had do does did will would should could may might must can " +
		"this that these those our your their we you they it he she who what " +
		"where when why how all each every both few more most other some such " +
		"no not only own same so than too very just about into through during " +
		"before after above below between under again further then once")

func buildStopWords(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// EnglishStopWords returns the shared stop-word set.
func EnglishStopWords() map[string]struct{} {
	return englishStopWords
}
