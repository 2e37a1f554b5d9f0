package wire

import "fmt"

// InvariantError signals that a payload left normalization with a question
// type outside the closed allowed set. This is a mapping-table bug, not a
// user input error; the submit attempt is aborted without side effects.
type InvariantError struct {
	Type string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("normalized payload has unknown question type '%s'", e.Type)
}

// MissingClipError is returned when a listening question has no resolvable
// audio clip. ExamLinked distinguishes the two recovery paths surfaced to
// the admin.
type MissingClipError struct {
	ExamLinked bool
}

func (e *MissingClipError) Error() string {
	if e.ExamLinked {
		return "the linked exam section has no audio clip: upload the section audio first"
	}
	return "listening questions need an audio clip: pick a clip manually"
}

// UnmappedLabelError is returned when a UI label has no entry in the closed
// label-to-code table. Unmapped input is never guessed at.
type UnmappedLabelError struct {
	Label string
}

func (e *UnmappedLabelError) Error() string {
	return fmt.Sprintf("no question type code mapped for label '%s'", e.Label)
}
