// Package openai provides AI service implementations using OpenAI-compatible APIs.
//
// This package implements the ai.Provider interface using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM). Image description and audio transcription send
// the raw bytes as binary message parts to a multimodal model; structured
// analysis runs in JSON mode with fence stripping and repair applied to the
// response before it is handed back.
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithVisionModel("qwen2.5vl:7b"),
//	)
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	extraction := provider.ImageExtractor().Describe(ctx, data, "image/png", "")
//	raw, err := provider.Analyzer().Analyze(ctx, "buy milk tomorrow 8am")
package openai
