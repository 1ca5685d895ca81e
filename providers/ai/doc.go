// Package ai defines the provider-agnostic request and response types used to
// talk to generative text services. Concrete backends (see the gemini
// subpackage) map these types to their own wire format so that the tutoring
// core never depends on a specific vendor.
//
// The central interface is [Provider]. Requests flow through [ChatRequest]
// and completions come back as [ChatResponse].
package ai
