// Package client turns an [ai.Provider] into the one-call text generator the
// tutor agents depend on: [Client.Generate] sends a single user turn with a
// system prompt and returns the trimmed answer text.
//
// Every failure, whether transport, timeout, provider refusal or an empty
// answer, is reported as a [*ServiceError] so callers can degrade gracefully
// with a single errors.As check. Cross-cutting behaviour such as deadlines,
// retries and logging is added with [WithMiddleware]; see the middleware
// subpackage.
package client
