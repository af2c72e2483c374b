package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/set-night/phonechat/internal/config"
)

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator wraps a TextGenerator so that callers always get a reply.
// Any failure, including running past the timeout, becomes an apology text.
type Generator struct {
	gateway TextGenerator
	timeout time.Duration
}

func NewGenerator(gateway TextGenerator, timeout time.Duration) *Generator {
	return &Generator{gateway: gateway, timeout: timeout}
}

func (g *Generator) Reply(ctx context.Context, prompt string) string {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.generate(ctx, prompt)
	if err != nil {
		slog.Warn("text generation failed, substituting apology",
			"error", err,
			"duration", time.Since(start),
		)
		return FailureReply(err)
	}
	return text
}

type generation struct {
	text string
	err  error
}

// generate returns when the gateway answers or ctx is done, whichever is first.
func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	done := make(chan generation, 1)
	go func() {
		text, err := g.gateway.Generate(ctx, prompt)
		done <- generation{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("wait for generation: %w", ctx.Err())
	}
}

// FailureReply is the text substituted for a failed generation.
func FailureReply(err error) string {
	return fmt.Sprintf(config.GenerationFailureReply, err.Error())
}
