package flow

import (
	"time"

	"claimconnect/internal/model"
)

// parseDay truncates a parsed ISO date to midnight
func parseDay(iso string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validAccidentDate accepts dates within the last 12 months, not in the
// future
func validAccidentDate(a model.Answer, _ model.AnswerSet) bool {
	d, ok := parseDay(a.Date)
	if !ok {
		return false
	}
	now := today()
	if d.After(now) {
		return false
	}
	return !d.Before(now.AddDate(-1, 0, 0))
}

// validTreatmentDate accepts dates between the accident date and today
func validTreatmentDate(a model.Answer, answers model.AnswerSet) bool {
	d, ok := parseDay(a.Date)
	if !ok {
		return false
	}
	accident, ok := parseDay(answers.Date("accidentDate"))
	if !ok {
		return false
	}
	if d.After(today()) {
		return false
	}
	return !d.Before(accident)
}

// DefaultQuestions returns the qualification question sequence
func DefaultQuestions() []model.QuestionSpec {
	return []model.QuestionSpec{
		{
			ID:       "accidentDate",
			Prompt:   "When did your accident occur?",
			HelpText: "This helps us understand the timeline of your case.",
			Kind:     model.KindDate,
			Validate: validAccidentDate,
		},
		{
			ID:       "medicalTreatment",
			Prompt:   "Did you receive medical treatment after the accident?",
			HelpText: "Medical records are important for documenting your injuries.",
			Kind:     model.KindBoolean,
			FollowUp: &model.FollowUpSpec{
				When: func(a model.Answer) bool { return a.Bool },
				Question: model.QuestionSpec{
					ID:       "medicalTreatmentDate",
					Prompt:   "Approximately when did you first receive medical treatment?",
					HelpText: "An approximate date is fine.",
					Kind:     model.KindDate,
					Validate: validTreatmentDate,
				},
			},
		},
		{
			ID:       "atFault",
			Prompt:   "Were you found at fault for the accident?",
			HelpText: "This helps us understand liability in your case.",
			Kind:     model.KindSelect,
			Options: []model.Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No", Qualifying: true},
				{Value: "unsure", Label: "Unsure"},
			},
			ReverseLogic: true,
		},
		{
			ID:       "hasAttorney",
			Prompt:   "Do you currently have an attorney handling your case?",
			HelpText: "We want to ensure we're not interfering with existing representation.",
			Kind:     model.KindSelect,
			Options: []model.Option{
				{Value: "no", Label: "No", Qualifying: true},
				{Value: "yes-change", Label: "Yes, but I'm considering a change", Qualifying: true},
				{Value: "yes", Label: "Yes, and I want to keep them"},
			},
		},
		{
			ID:           "movingViolation",
			Prompt:       "Did you receive a traffic ticket or moving violation from this accident?",
			HelpText:     "This helps us understand the circumstances of the accident.",
			Kind:         model.KindBoolean,
			ReverseLogic: true,
		},
		{
			ID:           "priorSettlement",
			Prompt:       "Have you already received a settlement for this accident?",
			HelpText:     "This helps us understand if your case has already been resolved.",
			Kind:         model.KindBoolean,
			ReverseLogic: true,
		},
		{
			ID:       "insuranceCoverage",
			Prompt:   "Which insurance coverage is applicable in your situation?",
			HelpText: "Select all that apply. This helps us understand potential sources of recovery.",
			Kind:     model.KindCheckbox,
			Options: []model.Option{
				{Value: "liability", Label: "The other party's insurance"},
				{Value: "uninsured", Label: "Your Uninsured Motorist (UM) coverage"},
				{Value: "underinsured", Label: "Your Underinsured Motorist (UIM) coverage"},
			},
		},
	}
}
