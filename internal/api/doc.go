// Package api exposes the tutor over HTTP.
//
// Routes:
//
//	GET  /                    service banner
//	GET  /health              liveness
//	POST /api/chat            answer a message
//	GET  /api/agents          agent names
//	GET  /api/agents/routing  routing description
//	POST /api/tools/{name}    invoke a tool with a JSON argument object
//	GET  /api/health          health with available agents
//
// Errors are JSON objects of the form {"detail": "..."}.
package api
