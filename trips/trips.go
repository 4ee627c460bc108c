package trips

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"wayfare/models"
)

// Generator produces day-by-day trip plans from a destination and trip
// parameters. A nil client means generation is unconfigured.
type Generator struct {
	client *openai.Client
	model  string
}

func NewGenerator() *Generator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return &Generator{}
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (g *Generator) Configured() bool {
	return g.client != nil
}

// GenerateTrip asks the model for a day-by-day plan matching the
// itinerary's destination, dates and interests.
func (g *Generator) GenerateTrip(ctx context.Context, it *models.Itinerary) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("trip generation not configured")
	}

	prompt := buildPrompt(it)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planner. Produce concise day-by-day itineraries with morning, afternoon and evening activities.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(it *models.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s from %s to %s for %d traveler(s).",
		it.Duration(), it.Destination, it.StartDate, it.EndDate, it.Travelers)
	if it.Budget != "" {
		fmt.Fprintf(&b, " Budget level: %s.", it.Budget)
	}
	if len(it.Interests) > 0 {
		fmt.Fprintf(&b, " Interests: %s.", strings.Join(it.Interests, ", "))
	}
	if it.Accommodation != "" {
		fmt.Fprintf(&b, " Staying at: %s.", it.Accommodation)
	}
	return b.String()
}
