// Package gemini implements [ai.Provider] for Google's Gemini generative
// language API through the generateContent REST endpoint.
//
// [New] reads GEMINI_API_KEY and GEMINI_API_BASE_URL from the environment;
// [GeminiProvider.WithAPIKey], [GeminiProvider.WithBaseURL] and
// [GeminiProvider.WithHttpClient] override them. The key travels in the
// x-goog-api-key header.
package gemini
