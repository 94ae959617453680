// Package llm classifies documents with a hosted language model. It supports
// Anthropic, OpenAI (and compatible endpoints) and Gemini, with retry logic,
// rate limiting and response caching. Failures are returned to the caller,
// which is expected to fall back to the rule-based classifier.
package llm
