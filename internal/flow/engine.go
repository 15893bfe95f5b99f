package flow

import (
	"errors"
	"fmt"

	"claimconnect/internal/model"
)

var (
	// ErrFlowComplete is returned when an answer arrives after the last
	// question has been committed
	ErrFlowComplete = errors.New("qualification flow already complete")

	// ErrUnknownQuestion is returned when an answer targets a question
	// that is not the current one
	ErrUnknownQuestion = errors.New("answer does not match current question")
)

// ValidationError reports an answer rejected by a question's validator
type ValidationError struct {
	QuestionID string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.QuestionID, e.Reason)
}

// DecisionPolicy decides qualification once every visible question has a
// committed answer
type DecisionPolicy func(model.AnswerSet) bool

// DefaultPolicy qualifies every completed answer set. Screening happens
// downstream at the buyer network, so completion itself is the bar here.
func DefaultPolicy(model.AnswerSet) bool { return true }

// Engine walks a visitor through the question sequence. It holds no
// per-session state; callers pass the session's answers and step on
// every operation.
type Engine struct {
	questions []model.QuestionSpec
	policy    DecisionPolicy
}

// NewEngine builds an engine over a question sequence. A nil policy
// falls back to DefaultPolicy.
func NewEngine(questions []model.QuestionSpec, policy DecisionPolicy) *Engine {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &Engine{questions: questions, policy: policy}
}

// visible expands the base sequence with follow-ups whose gate predicate
// holds for the committed parent answer
func (e *Engine) visible(answers model.AnswerSet) []model.QuestionSpec {
	seq := make([]model.QuestionSpec, 0, len(e.questions)+1)
	for _, q := range e.questions {
		seq = append(seq, q)
		if q.FollowUp == nil {
			continue
		}
		if parent, ok := answers[q.ID]; ok && q.FollowUp.When(parent) {
			seq = append(seq, q.FollowUp.Question)
		}
	}
	return seq
}

// Current returns the question at the given step, or false when the step
// is past the end of the visible sequence
func (e *Engine) Current(step int, answers model.AnswerSet) (model.QuestionSpec, bool) {
	seq := e.visible(answers)
	if step < 0 || step >= len(seq) {
		return model.QuestionSpec{}, false
	}
	return seq[step], true
}

// Progress reports the 1-based position and total count of visible
// questions for the given step
func (e *Engine) Progress(step int, answers model.AnswerSet) (pos, total int) {
	seq := e.visible(answers)
	total = len(seq)
	pos = step + 1
	if pos > total {
		pos = total
	}
	return pos, total
}

// Answer validates and commits an answer for the question identified by
// questionID at the given step, then advances. It returns the next step
// and, once the sequence is exhausted, the qualification decision.
func (e *Engine) Answer(step int, answers model.AnswerSet, questionID string, a model.Answer) (nextStep int, decision *bool, err error) {
	q, ok := e.Current(step, answers)
	if !ok {
		return step, nil, ErrFlowComplete
	}
	if q.ID != questionID {
		return step, nil, fmt.Errorf("%w: got %q, expected %q", ErrUnknownQuestion, questionID, q.ID)
	}
	if a.Kind != q.Kind {
		return step, nil, &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("expected %s answer", q.Kind)}
	}
	switch q.Kind {
	case model.KindSelect:
		if !q.HasOption(a.Choice) {
			return step, nil, &ValidationError{QuestionID: q.ID, Reason: "not a declared option"}
		}
	case model.KindCheckbox:
		if !a.AnyFlagSet() {
			return step, nil, &ValidationError{QuestionID: q.ID, Reason: "select at least one option"}
		}
		for flag := range a.Flags {
			if !q.HasOption(flag) {
				return step, nil, &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown option %q", flag)}
			}
		}
	}
	if q.Validate != nil && !q.Validate(a, answers) {
		return step, nil, &ValidationError{QuestionID: q.ID, Reason: "rejected by validation"}
	}

	answers[q.ID] = a

	// Re-answering a follow-up's parent can orphan the follow-up's
	// committed answer; drop it so a stale date never reaches the lead.
	if q.FollowUp != nil && !q.FollowUp.When(a) {
		delete(answers, q.FollowUp.Question.ID)
	}

	nextStep = step + 1
	if nextStep >= len(e.visible(answers)) {
		qualified := e.policy(answers)
		decision = &qualified
	}
	return nextStep, decision, nil
}

// Back steps the flow to the previous question, flooring at the first.
// Committed answers are retained so revisited questions show their value.
func (e *Engine) Back(step int) int {
	if step <= 0 {
		return 0
	}
	return step - 1
}
