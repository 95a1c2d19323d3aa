// Package model defines the provider-agnostic abstractions and concrete
// helpers for interacting with language models from the LLM nodes.
//
// Core goals:
//   - Unify generation behind a single interface (Generator)
//   - Keep request/response shapes minimal and transport independent
//   - Centralize API key resolution with its environment-first policy
//   - Facilitate lightweight mocking for tests (MockGenerator)
//
// Providers (OpenAI, Anthropic, Gemini, Ollama) implement the Generator
// interface from this package so the nodes remain decoupled from vendor SDKs.
package model
