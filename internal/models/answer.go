package models

// Learner answer shapes for the practice path. Each question type that
// supports immediate client-side feedback has its own answer payload.

type ChoiceAnswer struct {
	Selected string `json:"selected"`
}

type BoolAnswer struct {
	Value bool `json:"value"`
}

type TextAnswer struct {
	Text string `json:"text"`
}

// ReorderAnswer carries either an ordered token list (drag-to-order) or a
// single typed sentence (type-to-order). When both are present the token
// list wins.
type ReorderAnswer struct {
	Tokens []string `json:"tokens,omitempty"`
	Typed  string   `json:"typed,omitempty"`
}

// Correct-answer shapes stored alongside a practice item.

type ChoiceKey struct {
	Value string `json:"value"`
}

type BoolKey struct {
	Value bool `json:"value"`
}

type TextKey struct {
	Value string `json:"value"`
}

type ReorderKey struct {
	Sentence string `json:"sentence"`
}
