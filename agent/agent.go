// Package agent implements the `rcv assist` conversation: a facilitator
// model answering the user with the help of expert models, one of them
// running the recovery calculator.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert

	// Print writes an answer, in markdown, to w. Defaults to plain text.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading the user's questions from r and writing
// the answers to w.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
		Print:       func(w io.Writer, s string) { fmt.Fprintln(w, s) },
	}
}

// Start opens the chat sessions of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting %s: %w", e.Name, err)
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive session. 'prompts' are asked first, as if
// typed by the user.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to rcv assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(input)
		}

		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, text(content))
	}
}
