package vectorizer

import "strings"

// englishStopwords lists common English function words excluded from the
// vocabulary during fitting.
var englishStopwords = []string{
	"about", "above", "across", "after", "afterwards", "again", "against",
	"all", "almost", "alone", "along", "already", "also", "although",
	"always", "am", "among", "amongst", "an", "and", "another", "any",
	"anyhow", "anyone", "anything", "anyway", "anywhere", "are", "around",
	"as", "at", "back", "be", "became", "because", "become", "becomes",
	"been", "before", "beforehand", "behind", "being", "below", "beside",
	"besides", "between", "beyond", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "doing", "done", "down", "during", "each",
	"either", "else", "elsewhere", "enough", "even", "ever", "every",
	"everyone", "everything", "everywhere", "except", "few", "for",
	"former", "formerly", "from", "further", "had", "has", "have", "having",
	"he", "hence", "her", "here", "hereafter", "hereby", "herein", "hers",
	"herself", "him", "himself", "his", "how", "however", "if", "in",
	"indeed", "into", "is", "it", "its", "itself", "just", "last",
	"latter", "latterly", "least", "less", "many", "may", "me", "meanwhile",
	"might", "mine", "more", "moreover", "most", "mostly", "much", "must",
	"my", "myself", "namely", "neither", "never", "nevertheless", "next",
	"no", "nobody", "none", "noone", "nor", "not", "nothing", "now",
	"nowhere", "of", "off", "often", "on", "once", "one", "only", "onto",
	"or", "other", "others", "otherwise", "our", "ours", "ourselves", "out",
	"over", "own", "per", "perhaps", "please", "rather", "same", "seem",
	"seemed", "seeming", "seems", "several", "she", "should", "since",
	"so", "some", "somehow", "someone", "something", "sometime",
	"sometimes", "somewhere", "still", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "thence", "there",
	"thereafter", "thereby", "therefore", "therein", "thereupon", "these",
	"they", "this", "those", "though", "through", "throughout", "thru",
	"thus", "to", "together", "too", "toward", "towards", "under", "until",
	"up", "upon", "us", "very", "was", "we", "well", "were", "what",
	"whatever", "when", "whence", "whenever", "where", "whereafter",
	"whereas", "whereby", "wherein", "whereupon", "wherever", "whether",
	"which", "while", "whither", "who", "whoever", "whole", "whom",
	"whose", "why", "will", "with", "within", "without", "would", "yet",
	"you", "your", "yours", "yourself", "yourselves",
}

// DefaultStopwords returns a fresh copy of the English stopword set so
// callers can extend it without affecting other vectorizers.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return set
}

// StopwordSet builds a stopword set from a word list, folding to lower case.
func StopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
