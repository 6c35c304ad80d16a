package aisvc

import (
	"context"

	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/values"
)

// DummyService returns canned completions; for tests and local dev
// without an API key.
type DummyService struct {
	Feedback   string
	FollowUp   string
	Reflection string
	Err        error
}

var (
	_ feedback.Generator         = (*DummyService)(nil)
	_ values.ReflectionGenerator = (*DummyService)(nil)
)

func NewDummyService() *DummyService {
	return &DummyService{
		Feedback:   "Well done! One thing to work on: structure.",
		FollowUp:   "Good question; the key point is clarity.",
		Reflection: "Thanks for sharing your perspective; have you considered the opposite view?",
	}
}

func (svc *DummyService) GenerateFeedback(context.Context, string, string, string, string, *float64) (string, error) {
	return svc.Feedback, svc.Err
}

func (svc *DummyService) GenerateFollowUp(context.Context, string, string, string) (string, error) {
	return svc.FollowUp, svc.Err
}

func (svc *DummyService) GenerateReflection(context.Context, string, string, string) (string, error) {
	return svc.Reflection, svc.Err
}
