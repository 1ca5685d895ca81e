// Package tutor is the entry point for answering questions. A [Tutor] owns
// the handlers and the shared tool catalog: it classifies each query, hands
// it to the chosen handler and always returns an answer, turning handler
// errors and panics into degraded responses.
//
//	t := tutor.New(generator, tutor.WithLogger(logger))
//	resp := t.Process(ctx, agent.NewQuery("What is 2 + 3?", nil))
//	fmt.Println(resp.Domain, resp.Text)
package tutor
