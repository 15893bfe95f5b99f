package flow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimconnect/internal/model"
)

func newEngine() *Engine {
	return NewEngine(DefaultQuestions(), nil)
}

func iso(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestAccidentDateWindow(t *testing.T) {
	e := newEngine()
	now := time.Now()

	tests := []struct {
		name string
		date string
		ok   bool
	}{
		{"yesterday", iso(now.AddDate(0, 0, -1)), true},
		{"today", iso(now), true},
		{"eleven months ago", iso(now.AddDate(0, -11, 0)), true},
		{"just inside the window", iso(now.AddDate(-1, 0, 1)), true},
		{"exactly twelve months", iso(now.AddDate(-1, 0, 0)), true},
		{"thirteen months ago", iso(now.AddDate(-1, -1, 0)), false},
		{"tomorrow", iso(now.AddDate(0, 0, 1)), false},
		{"garbage", "not-a-date", false},
	}
	for _, tt := range tests {
		answers := model.AnswerSet{}
		_, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(tt.date))
		if tt.ok {
			assert.NoError(t, err, tt.name)
		} else {
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, tt.name)
		}
	}
}

func TestTreatmentDateBounds(t *testing.T) {
	e := newEngine()
	now := time.Now()
	accident := iso(now.AddDate(0, -2, 0))

	answers := model.AnswerSet{}
	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(accident))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(true))
	require.NoError(t, err)

	// Follow-up is now the current question
	q, ok := e.Current(step, answers)
	require.True(t, ok)
	require.Equal(t, "medicalTreatmentDate", q.ID)

	// Before the accident
	_, _, err = e.Answer(step, answers, "medicalTreatmentDate", model.DateAnswer(iso(now.AddDate(0, -3, 0))))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// In the future
	_, _, err = e.Answer(step, answers, "medicalTreatmentDate", model.DateAnswer(iso(now.AddDate(0, 0, 2))))
	assert.ErrorAs(t, err, &vErr)

	// Same day as the accident
	_, _, err = e.Answer(step, answers, "medicalTreatmentDate", model.DateAnswer(accident))
	assert.NoError(t, err)
}

func TestFollowUpSkippedWhenNoTreatment(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{}

	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(iso(time.Now().AddDate(0, -1, 0))))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(false))
	require.NoError(t, err)

	q, ok := e.Current(step, answers)
	require.True(t, ok)
	assert.Equal(t, "atFault", q.ID)
}

func TestReansweringParentClearsOrphanedFollowUp(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{}
	now := time.Now()

	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(iso(now.AddDate(0, -1, 0))))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(true))
	require.NoError(t, err)
	_, _, err = e.Answer(step, answers, "medicalTreatmentDate", model.DateAnswer(iso(now)))
	require.NoError(t, err)

	// Go back twice and flip the treatment answer
	step = e.Back(e.Back(step + 1))
	require.Equal(t, 1, step)
	_, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(false))
	require.NoError(t, err)

	_, hasOrphan := answers["medicalTreatmentDate"]
	assert.False(t, hasOrphan)
}

func TestSelectRejectsUndeclaredOption(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{
		"accidentDate":     model.DateAnswer(iso(time.Now())),
		"medicalTreatment": model.BoolAnswer(false),
	}
	_, _, err := e.Answer(2, answers, "atFault", model.ChoiceAnswer("maybe"))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, _, err = e.Answer(2, answers, "atFault", model.ChoiceAnswer("unsure"))
	assert.NoError(t, err)
}

func TestCheckboxRequiresAtLeastOneFlag(t *testing.T) {
	e := newEngine()
	answers, step := answeredThroughSettlement(t, e)

	_, _, err := e.Answer(step, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{
		"liability": false, "uninsured": false, "underinsured": false,
	}))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, _, err = e.Answer(step, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{"liability": true}))
	assert.NoError(t, err)
}

func TestCheckboxMinimumHoldsWithoutValidator(t *testing.T) {
	q := model.QuestionSpec{
		ID:     "propertyDamage",
		Prompt: "What was damaged?",
		Kind:   model.KindCheckbox,
		Options: []model.Option{
			{Value: "vehicle", Label: "Vehicle"},
			{Value: "personal", Label: "Personal property"},
		},
	}
	e := NewEngine([]model.QuestionSpec{q}, nil)
	answers := model.AnswerSet{}

	_, _, err := e.Answer(0, answers, "propertyDamage", model.FlagsAnswer(map[string]bool{}))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, _, err = e.Answer(0, answers, "propertyDamage", model.FlagsAnswer(map[string]bool{"vehicle": true}))
	assert.NoError(t, err)
}

func TestCheckboxRejectsUnknownFlag(t *testing.T) {
	e := newEngine()
	answers, step := answeredThroughSettlement(t, e)

	_, _, err := e.Answer(step, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{"collision": true}))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestWrongQuestionAndKind(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{}

	_, _, err := e.Answer(0, answers, "atFault", model.ChoiceAnswer("no"))
	assert.True(t, errors.Is(err, ErrUnknownQuestion))

	_, _, err = e.Answer(0, answers, "accidentDate", model.BoolAnswer(true))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestBackFloorsAtZeroAndKeepsAnswers(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{}

	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(iso(time.Now())))
	require.NoError(t, err)

	step = e.Back(step)
	assert.Equal(t, 0, step)
	step = e.Back(step)
	assert.Equal(t, 0, step)
	assert.Contains(t, answers, "accidentDate")
}

func TestCompleteFlowQualifies(t *testing.T) {
	e := newEngine()
	answers, step := answeredThroughSettlement(t, e)

	nextStep, decision, err := e.Answer(step, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{"uninsured": true}))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.True(t, *decision)

	_, ok := e.Current(nextStep, answers)
	assert.False(t, ok)

	_, _, err = e.Answer(nextStep, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{"uninsured": true}))
	assert.True(t, errors.Is(err, ErrFlowComplete))
}

func TestCustomPolicy(t *testing.T) {
	rejectAll := func(model.AnswerSet) bool { return false }
	e := NewEngine(DefaultQuestions(), rejectAll)
	answers, step := answeredThroughSettlementEngine(t, e)

	_, decision, err := e.Answer(step, answers, "insuranceCoverage", model.FlagsAnswer(map[string]bool{"liability": true}))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.False(t, *decision)
}

func TestProgressCountsFollowUp(t *testing.T) {
	e := newEngine()
	answers := model.AnswerSet{}

	_, total := e.Progress(0, answers)
	assert.Equal(t, 7, total)

	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(iso(time.Now())))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(true))
	require.NoError(t, err)

	pos, total := e.Progress(step, answers)
	assert.Equal(t, 8, total)
	assert.Equal(t, 3, pos)
}

// answeredThroughSettlement commits every question up to (not including)
// insuranceCoverage, declining medical treatment so no follow-up appears
func answeredThroughSettlement(t *testing.T, e *Engine) (model.AnswerSet, int) {
	t.Helper()
	return answeredThroughSettlementEngine(t, e)
}

func answeredThroughSettlementEngine(t *testing.T, e *Engine) (model.AnswerSet, int) {
	t.Helper()
	answers := model.AnswerSet{}

	step, _, err := e.Answer(0, answers, "accidentDate", model.DateAnswer(iso(time.Now().AddDate(0, -1, 0))))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "medicalTreatment", model.BoolAnswer(false))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "atFault", model.ChoiceAnswer("no"))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "hasAttorney", model.ChoiceAnswer("no"))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "movingViolation", model.BoolAnswer(false))
	require.NoError(t, err)
	step, _, err = e.Answer(step, answers, "priorSettlement", model.BoolAnswer(false))
	require.NoError(t, err)
	return answers, step
}
