package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/wellness-companion/internal/llm"
)

// ChatResult AI 聊天应答（单次调用同时给出回应与情绪分析）
type ChatResult struct {
	Response       string  `json:"response"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentimentScore"`
}

// SentimentResult 情绪分析
type SentimentResult struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

type journalPromptResult struct {
	Prompt string `json:"prompt"`
}

type wellnessContentResult struct {
	SuggestedContent string `json:"suggestedContent"`
}

// AIService AI 伴聊、日记引导、情绪分析、个性化内容。
// 每个调用点自带形状校验与领域兜底值。
type AIService interface {
	Chat(ctx context.Context, userInput string, history []string) (*ChatResult, error)
	GenerateJournalPrompt(ctx context.Context, mood, journalHistory string) (string, error)
	AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error)
	PersonalizeContent(ctx context.Context, mood, journalEntries string) (string, error)
}

type aiService struct {
	gen  llm.Generator
	opts llm.Options
}

func NewAIService(gen llm.Generator, opts llm.Options) AIService {
	return &aiService{gen: gen, opts: opts}
}

const chatPromptTemplate = `You are Sebas, an empathetic AI companion. Your goal is to support users in expressing themselves and reflecting on their feelings.
1. Analyze the user's message to determine its sentiment (positive, negative, or neutral) and a sentiment score from -1.0 to 1.0.
2. Respond to the user's message in a warm, understanding, and supportive way. Ask open-ended, reflective questions to encourage deeper thought.
3. Avoid giving direct advice or solutions, especially medical advice. Focus on validating their feelings and guiding them through their thoughts.

Return your answer as a JSON object with fields "response" (string), "sentiment" (string) and "sentimentScore" (number).
%s
User's current message: %q
`

func (s *aiService) Chat(ctx context.Context, userInput string, history []string) (*ChatResult, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", ErrInvalidArgument)
	}

	// 仅携带最近 6 条作为上下文
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	historyBlock := ""
	if len(history) > 0 {
		historyBlock = "Conversation history:\n" + strings.Join(history, "\n") + "\n"
	}
	prompt := fmt.Sprintf(chatPromptTemplate, historyBlock, userInput)

	// 聊天把不可用应答视为失败（不兜底），由调用方展示统一失败提示
	out, err := llm.CallStrict(ctx, s.gen, prompt, s.opts, func(c ChatResult) error {
		if c.Response == "" || c.Sentiment == "" {
			return fmt.Errorf("missing response or sentiment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

const journalPromptTemplate = `You are an AI journaling assistant that helps users overcome writer's block.
Based on the user's current mood and past journal entries, generate a personalized journal prompt to encourage self-reflection.

Mood: %s
Journal history: %s

Return a JSON object with a single string field "prompt".
`

const fallbackJournalPrompt = "Take a moment to reflect on your day. What's one thing that stood out to you, good or bad?"

func (s *aiService) GenerateJournalPrompt(ctx context.Context, mood, journalHistory string) (string, error) {
	if mood == "" {
		mood = "neutral"
	}
	if journalHistory == "" {
		journalHistory = "No previous entries."
	}
	prompt := fmt.Sprintf(journalPromptTemplate, mood, journalHistory)

	out, err := llm.Call(ctx, s.gen, prompt, s.opts, func(r journalPromptResult) error {
		if strings.TrimSpace(r.Prompt) == "" {
			return fmt.Errorf("empty prompt")
		}
		return nil
	}, journalPromptResult{Prompt: fallbackJournalPrompt})
	if err != nil {
		return "", err
	}
	return out.Prompt, nil
}

const sentimentPromptTemplate = `Analyze the sentiment of the following text and provide a sentiment label (positive, negative, or neutral) and a numerical score between -1 and 1, where -1 is very negative and 1 is very positive.

Text: %s

Return a JSON object with fields "sentiment" (string) and "score" (number).
`

func (s *aiService) AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidArgument)
	}
	prompt := fmt.Sprintf(sentimentPromptTemplate, text)

	out, err := llm.Call(ctx, s.gen, prompt, s.opts, func(r SentimentResult) error {
		if r.Sentiment == "" {
			return fmt.Errorf("missing sentiment")
		}
		return nil
	}, SentimentResult{Sentiment: "neutral", Score: 0})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

const wellnessContentTemplate = `You are a wellness coach. Based on the user's current mood and recent journal entries, suggest one piece of personalized wellness content: a short actionable activity, reflection or resource.

Mood: %s
Recent journal entries: %s

Return a JSON object with a single string field "suggestedContent".
`

const fallbackWellnessContent = "Take five minutes for yourself today: breathe slowly, step outside if you can, and notice one small thing you are grateful for."

func (s *aiService) PersonalizeContent(ctx context.Context, mood, journalEntries string) (string, error) {
	if mood == "" {
		mood = "Not specified"
	}
	if journalEntries == "" {
		journalEntries = "No recent journal entries."
	}
	prompt := fmt.Sprintf(wellnessContentTemplate, mood, journalEntries)

	out, err := llm.Call(ctx, s.gen, prompt, s.opts, func(r wellnessContentResult) error {
		if strings.TrimSpace(r.SuggestedContent) == "" {
			return fmt.Errorf("empty suggestion")
		}
		return nil
	}, wellnessContentResult{SuggestedContent: fallbackWellnessContent})
	if err != nil {
		return "", err
	}
	return out.SuggestedContent, nil
}
