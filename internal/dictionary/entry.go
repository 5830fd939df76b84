package dictionary

import "strings"

// Entry is a single result object returned by the dictionary API. The API
// returns one entry per etymology, so a word can yield several entries.
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
	License    *License   `json:"license,omitempty"`
}

// Phonetic is a transcription and/or a pronunciation recording.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense with optional example and related words.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// License describes the licence the entry's content is published under.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AudioPhonetic returns the first phonetic that carries a recording.
func (e Entry) AudioPhonetic() (Phonetic, bool) {
	for _, ph := range e.Phonetics {
		if strings.TrimSpace(ph.Audio) != "" {
			return ph, true
		}
	}
	return Phonetic{}, false
}

// HasRelated reports whether the meaning lists synonyms or antonyms of its own.
func (m Meaning) HasRelated() bool {
	return len(m.Synonyms) > 0 || len(m.Antonyms) > 0
}

// Region infers the accent of the recording from its URL, e.g. hello-us.mp3.
// Empty when the URL carries no recognisable marker.
func (p Phonetic) Region() string {
	lower := strings.ToLower(p.Audio)
	for _, region := range []string{"us", "uk", "au"} {
		if strings.Contains(lower, "-"+region+".") || strings.Contains(lower, "-"+region+"-") {
			return strings.ToUpper(region)
		}
	}
	return ""
}
