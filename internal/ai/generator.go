// Package ai defines the provider-neutral surface consumed by the llm-backed
// pipeline steps.
package ai

import "context"

// Generator produces text for a prompt. Implementations wrap a concrete
// provider client and are injected into the steps that need one, so the
// scoring core and its tests never touch the network.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
