package synthesis

import "context"

// TextCompleter is the external text-completion capability behind script
// synthesis and typo correction
type TextCompleter interface {
	Complete(ctx context.Context, systemPrompt, userText string, opts CompletionOptions) (string, error)
}

// CompletionOptions bounds a single completion request
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}
