package agent

import (
	"context"
	"fmt"

	"github.com/kaspa-community/projector/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a market analyst that has the user's current
// projection and facts in context.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAnalyst creates the analyst. facts and projection are the markdown
// blocks already rendered for the user, so the analyst talks about the
// same numbers the user is looking at.
func NewAnalyst(facts, projection string) *Analyst {
	instruction := `
	You are a market analyst helping a kaspa holder reason about price
	scenarios. The user is looking at a projection table: hypothetical
	prices with the portfolio value and implied market capitalization at
	each. Ground your answers in the table below, never invent rows.
	Leverage Google Search for recent market information when asked.
	Be plain about the difference between a hypothetical scenario and a
	prediction: the table states arithmetic, not likelihood.

	Here is the tool's own documentation:

	` + must(docs.GetTopic("*")) + `

	Here is the user's current portfolio:

	` + facts + `

	And the projection table:

	` + projection

	return &Analyst{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
