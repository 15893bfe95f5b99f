package service

import (
	"context"
	"encoding/json"
	"fmt"

	"claimconnect/internal/flow"
	"claimconnect/internal/model"
)

// FlowStatus is the funnel position returned after every flow operation
type FlowStatus struct {
	SessionID string              `json:"sessionId"`
	Step      int                 `json:"step"`
	Position  int                 `json:"position"`
	Total     int                 `json:"total"`
	Complete  bool                `json:"complete"`
	Qualified *bool               `json:"qualified,omitempty"`
	Question  *model.QuestionView `json:"question,omitempty"`
}

// FlowService drives a session through the qualification engine
type FlowService struct {
	engine   *flow.Engine
	sessions *SessionService
}

// NewFlowService creates a new flow service
func NewFlowService(engine *flow.Engine, sessions *SessionService) *FlowService {
	return &FlowService{
		engine:   engine,
		sessions: sessions,
	}
}

// Current returns the session's current question and progress
func (s *FlowService) Current(ctx context.Context, sessionID string) (FlowStatus, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return FlowStatus{}, err
	}
	return s.status(state), nil
}

// Answer decodes, validates and commits an answer for the session's
// current question, advancing the funnel
func (s *FlowService) Answer(ctx context.Context, sessionID, questionID string, value json.RawMessage) (FlowStatus, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return FlowStatus{}, err
	}

	q, ok := s.engine.Current(state.CurrentStep, state.Answers)
	if !ok {
		return FlowStatus{}, flow.ErrFlowComplete
	}
	answer, err := decodeAnswer(q.Kind, value)
	if err != nil {
		return FlowStatus{}, &flow.ValidationError{QuestionID: q.ID, Reason: err.Error()}
	}

	nextStep, decision, err := s.engine.Answer(state.CurrentStep, state.Answers, questionID, answer)
	if err != nil {
		return FlowStatus{}, err
	}

	state.CurrentStep = nextStep
	if decision != nil {
		state.Qualified = decision
	}
	if err := s.sessions.Save(ctx, state); err != nil {
		return FlowStatus{}, err
	}
	return s.status(state), nil
}

// Back moves the session to the previous question, keeping answers so
// the revisited question shows its committed value
func (s *FlowService) Back(ctx context.Context, sessionID string) (FlowStatus, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return FlowStatus{}, err
	}
	state.CurrentStep = s.engine.Back(state.CurrentStep)
	if err := s.sessions.Save(ctx, state); err != nil {
		return FlowStatus{}, err
	}
	return s.status(state), nil
}

func (s *FlowService) status(state *model.FormState) FlowStatus {
	pos, total := s.engine.Progress(state.CurrentStep, state.Answers)
	st := FlowStatus{
		SessionID: state.SessionID,
		Step:      state.CurrentStep,
		Position:  pos,
		Total:     total,
		Qualified: state.Qualified,
	}
	if q, ok := s.engine.Current(state.CurrentStep, state.Answers); ok {
		view := q.View()
		st.Question = &view
	} else {
		st.Complete = true
	}
	return st
}

// decodeAnswer converts a raw JSON value into the typed answer the
// question kind expects
func decodeAnswer(kind model.QuestionKind, value json.RawMessage) (model.Answer, error) {
	switch kind {
	case model.KindBoolean:
		var v bool
		if err := json.Unmarshal(value, &v); err != nil {
			return model.Answer{}, fmt.Errorf("expected a boolean value")
		}
		return model.BoolAnswer(v), nil
	case model.KindDate:
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return model.Answer{}, fmt.Errorf("expected a date string")
		}
		return model.DateAnswer(v), nil
	case model.KindSelect:
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return model.Answer{}, fmt.Errorf("expected an option value")
		}
		return model.ChoiceAnswer(v), nil
	case model.KindCheckbox:
		var v map[string]bool
		if err := json.Unmarshal(value, &v); err != nil {
			return model.Answer{}, fmt.Errorf("expected an option flag map")
		}
		return model.FlagsAnswer(v), nil
	}
	return model.Answer{}, fmt.Errorf("unsupported question kind %q", kind)
}
