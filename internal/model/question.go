package model

// QuestionKind defines the input kind of a question
type QuestionKind string

const (
	KindBoolean  QuestionKind = "boolean"  // Yes/No buttons
	KindDate     QuestionKind = "date"     // ISO date input
	KindSelect   QuestionKind = "select"   // Single choice from declared options
	KindCheckbox QuestionKind = "checkbox" // Multi-select flags, at least one required
)

// Option is a declared choice for select and checkbox questions
type Option struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	Qualifying bool   `json:"-"`
}

// Answer is the tagged-union value stored for one question. Exactly the
// field matching Kind is meaningful; the rest stay zero.
type Answer struct {
	Kind   QuestionKind    `json:"kind"`
	Bool   bool            `json:"bool,omitempty"`
	Date   string          `json:"date,omitempty"` // YYYY-MM-DD
	Choice string          `json:"choice,omitempty"`
	Flags  map[string]bool `json:"flags,omitempty"`
}

// BoolAnswer builds a boolean answer
func BoolAnswer(v bool) Answer { return Answer{Kind: KindBoolean, Bool: v} }

// DateAnswer builds a date answer from an ISO date string
func DateAnswer(iso string) Answer { return Answer{Kind: KindDate, Date: iso} }

// ChoiceAnswer builds a single-select answer
func ChoiceAnswer(v string) Answer { return Answer{Kind: KindSelect, Choice: v} }

// FlagsAnswer builds a multi-select answer
func FlagsAnswer(flags map[string]bool) Answer { return Answer{Kind: KindCheckbox, Flags: flags} }

// AnyFlagSet reports whether at least one checkbox flag is true
func (a Answer) AnyFlagSet() bool {
	for _, v := range a.Flags {
		if v {
			return true
		}
	}
	return false
}

// AnswerSet maps question identifiers to committed answers
type AnswerSet map[string]Answer

// Bool returns the boolean value for a question, false when absent
func (s AnswerSet) Bool(id string) bool {
	return s[id].Bool
}

// Date returns the ISO date value for a question, "" when absent
func (s AnswerSet) Date(id string) string {
	return s[id].Date
}

// Choice returns the selected value for a question, "" when absent
func (s AnswerSet) Choice(id string) string {
	return s[id].Choice
}

// FollowUpSpec declares a nested question gated by the parent's answer
type FollowUpSpec struct {
	When     func(Answer) bool
	Question QuestionSpec
}

// QuestionSpec is an immutable question definition in the qualification flow
type QuestionSpec struct {
	ID           string
	Prompt       string
	HelpText     string
	Kind         QuestionKind
	Options      []Option
	ReverseLogic bool // "No" is the qualifying answer
	Validate     func(value Answer, answers AnswerSet) bool
	FollowUp     *FollowUpSpec
}

// HasOption reports whether v is a declared option value
func (q QuestionSpec) HasOption(v string) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// QuestionView is the wire representation of a question sent to clients
type QuestionView struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	HelpText string       `json:"helpText,omitempty"`
	Kind     QuestionKind `json:"type"`
	Options  []Option     `json:"options,omitempty"`
}

// View converts a spec to its wire representation
func (q QuestionSpec) View() QuestionView {
	return QuestionView{
		ID:       q.ID,
		Prompt:   q.Prompt,
		HelpText: q.HelpText,
		Kind:     q.Kind,
		Options:  q.Options,
	}
}
