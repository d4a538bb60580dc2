package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Chat is the part of a genai chat session used by an Expert.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// maxTries bounds the attempts to send a message.
const maxTries = 4

// newBackOff returns the delay policy between attempts.
var newBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        Chat
}

// Start opens the chat session of the expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// send sends parts to the model, retrying on rate limits and server errors.
func (e *Expert) send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	op := func() (*genai.GenerateContentResponse, error) {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil && !transient(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}
	notify := func(err error, d time.Duration) {
		log.Warn().Err(err).Str("expert", e.Name).Dur("backoff", d).Msg("retrying")
	}
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(newBackOff()),
		backoff.WithMaxTries(maxTries),
		backoff.WithNotify(notify))
}

func transient(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

// Ask sends parts to the expert and returns its answer.
//
// Function calls are answered through the expert's Library, until the model
// returns a plain answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	content := resp.Candidates[0].Content

	var responses []*genai.Part
	for _, part := range content.Parts {
		if part.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		log.Debug().Str("expert", e.Name).Str("function", part.FunctionCall.Name).Interface("args", part.FunctionCall.Args).Msg("function call")
		responses = append(responses, &genai.Part{FunctionResponse: e.Library(ctx, part.FunctionCall)})
	}
	if len(responses) > 0 {
		return e.Ask(ctx, responses...)
	}
	return content, nil
}

// Declaration returns the function declaration to ask this expert.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call asks this expert the question in args.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok {
		return errorResponse(id, e.Name, fmt.Errorf("invalid question type %T, expected string", args["question"]))
	}
	answer, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, e.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}
	r := text(answer)
	log.Debug().Str("expert", e.Name).Str("question", question).Str("answer", r).Msg("expert answered")
	return outputResponse(id, e.Name, r)
}

// text concatenates the text parts of a content.
func text(c *genai.Content) string {
	var s string
	for _, p := range c.Parts {
		s += p.Text
	}
	return s
}
