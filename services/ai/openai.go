package aisvc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/values"
)

const (
	feedbackSystemPrompt = "You are a warm, encouraging tutor. First celebrate strengths, " +
		"then gently point out 1-2 areas to improve. Keep it conversational."

	followUpSystemPrompt = "You are a helpful tutor answering follow-up questions. " +
		"Be concise, clear, and encouraging."

	reflectionSystemPrompt = "You are a thoughtful mentor helping students reflect on their values and beliefs. " +
		"Your role is to help them explore their reasoning and consider alternative perspectives " +
		"while maintaining a supportive and non-judgmental tone."
)

// OpenAIService generates feedback, follow-up answers and reflections via
// the OpenAI chat completion API.
type OpenAIService struct {
	client *openai.Client
	model  string
}

var (
	_ feedback.Generator         = (*OpenAIService)(nil)
	_ values.ReflectionGenerator = (*OpenAIService)(nil)
)

func NewOpenAIService(conf *core.Config) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(conf.OpenAI.APIKey),
		model:  conf.OpenAI.Model,
	}
}

func (svc *OpenAIService) GenerateFeedback(ctx context.Context, text, tone, teacherNotes, conciseness string, grade *float64) (string, error) {
	gradeStr := "N/A"
	if grade != nil {
		gradeStr = strconv.FormatFloat(*grade, 'f', -1, 64)
	}
	userPrompt := fmt.Sprintf(
		"Student text:\n%s\n\nTeacher notes to incorporate:\n%s\n\nTone: %s\nLength: %s\nGrade: %s",
		text, teacherNotes, tone, conciseness, gradeStr,
	)
	return svc.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: feedbackSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	})
}

func (svc *OpenAIService) GenerateFollowUp(ctx context.Context, text, feedbackText, question string) (string, error) {
	return svc.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: followUpSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: "Student text:\n" + text},
		{Role: openai.ChatMessageRoleAssistant, Content: feedbackText},
		{Role: openai.ChatMessageRoleUser, Content: question},
	})
}

func (svc *OpenAIService) GenerateReflection(ctx context.Context, statementText, stance, responseText string) (string, error) {
	userPrompt := fmt.Sprintf(
		"Statement: %s\n\nStudent's stance: %s\n\nStudent's response: %s\n\n"+
			"Please provide a brief reflection that:\n"+
			"1. Acknowledges their perspective\n"+
			"2. Highlights any strong reasoning they've shown\n"+
			"3. Gently prompts them to consider an alternative viewpoint\n"+
			"4. Encourages further reflection",
		statementText, stance, responseText,
	)
	return svc.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: reflectionSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	})
}

func (svc *OpenAIService) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := svc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    svc.model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
