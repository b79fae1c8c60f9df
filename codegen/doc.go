// Package codegen builds prompts for LLM-assisted generator variants.
//
// The dashboard workflow this library serves lets a user describe the series
// they are synthesizing and ask a large language model for alternative
// generator code. This package turns a generator.Config into that
// natural-language prompt and, optionally, forwards it to the OpenAI API.
//
// The deterministic core never depends on this package; it is an adapter on
// top of the generator configuration with no invariants beyond "send
// config-derived text, receive text".
//
//	prompt := codegen.BuildPrompt(cfg)
//
//	client, err := codegen.NewClient()
//	code, err := client.GenerateCode(ctx, cfg)
package codegen
