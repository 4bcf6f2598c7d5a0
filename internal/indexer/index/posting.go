package index

// Posting is the caller-facing form of the posting list for one word.
type Posting struct {
	Word      string
	Documents []string
}

// TermEntry is a word and the number of documents containing it.
type TermEntry struct {
	Word    string
	DocFreq uint64
}
