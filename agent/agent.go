// Package agent implements the interactive AI session behind
// `kpp assist`.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates a new Agent around an io.Writer for the agent's output
// (e.g. os.Stdout) and an io.Reader for user input (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Analyst.chat == nil {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to kpp assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
