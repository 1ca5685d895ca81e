package tutor

import (
	"github.com/leofalp/aitutor/core/agent"
	"github.com/leofalp/aitutor/core/classifier"
)

const routingKeywordSample = 10

// AgentInfo describes one handler.
type AgentInfo struct {
	Type             string            `json:"type"`
	Description      string            `json:"description"`
	AvailableTools   []string          `json:"available_tools"`
	ToolDescriptions map[string]string `json:"tool_descriptions"`
}

// RoutingLogic summarises the decision rule.
type RoutingLogic struct {
	Method        string `json:"method"`
	TieResolution string `json:"tie_resolution"`
	MinimumScore  int    `json:"minimum_score"`
}

// RoutingInfo describes how queries are routed.
type RoutingInfo struct {
	AvailableAgents        map[string]AgentInfo `json:"available_agents"`
	ClassificationKeywords map[string][]string  `json:"classification_keywords"`
	RoutingLogic           RoutingLogic         `json:"routing_logic"`
}

// Agents lists the domains a query can be routed to.
func (t *Tutor) Agents() []classifier.Domain {
	return []classifier.Domain{classifier.DomainTutor, classifier.DomainMath, classifier.DomainPhysics}
}

// RoutingInfo reports the specialised handlers, a sample of the keywords
// per domain and the routing method.
func (t *Tutor) RoutingInfo() RoutingInfo {
	return RoutingInfo{
		AvailableAgents: map[string]AgentInfo{
			string(classifier.DomainMath):    t.agentInfo(t.handlers[classifier.DomainMath]),
			string(classifier.DomainPhysics): t.agentInfo(t.handlers[classifier.DomainPhysics]),
		},
		ClassificationKeywords: map[string][]string{
			string(classifier.DomainMath):    classifier.MathKeywords()[:routingKeywordSample],
			string(classifier.DomainPhysics): classifier.PhysicsKeywords()[:routingKeywordSample],
		},
		RoutingLogic: RoutingLogic{
			Method:        "keyword_scoring_with_pattern_detection",
			TieResolution: "context_clues_and_expression_analysis",
			MinimumScore:  classifier.MinimumScore,
		},
	}
}

func (t *Tutor) agentInfo(h agent.Handler) AgentInfo {
	info := AgentInfo{
		Type:             h.Name(),
		Description:      h.Description(),
		AvailableTools:   h.Tools(),
		ToolDescriptions: make(map[string]string),
	}
	for _, name := range info.AvailableTools {
		if tl, ok := t.catalog.Get(name); ok {
			info.ToolDescriptions[name] = tl.ToolInfo().Description
		}
	}
	return info
}
