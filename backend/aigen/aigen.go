// Package aigen produces study aids for a course: a summary, a quiz,
// flashcards and a genealogy of the period's key figures. The portal treats
// the generator as an external collaborator; its failures are surfaced to the
// user opaquely and never retried here.
package aigen

import "context"

type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"` // index into Options
	Explanation string   `json:"explanation"`
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Figure is one entry of a dynastic/political genealogy.
type Figure struct {
	Name     string `json:"name"`
	Relation string `json:"relation"` // e.g. "son of Ivan III"
	Years    string `json:"years"`
	Note     string `json:"note"`
}

type StudyAids struct {
	Summary    string      `json:"summary"`
	Quiz       []Question  `json:"quiz"`
	Flashcards []Flashcard `json:"flashcards"`
	Genealogy  []Figure    `json:"genealogy"`
}

// Generator turns a course name, plus optional source material bytes (the
// unit's PDF), into structured study aids.
type Generator interface {
	StudyAids(ctx context.Context, course string, source []byte) (*StudyAids, error)
}
