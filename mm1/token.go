// Package mm1 provides a discrete-step simulation of a single-server queue.
// Per step, a biased coin decides whether a customer arrives and another
// whether the server completes a departure; a truncation policy drops the
// oldest waiting customers on a fixed cadence.
package mm1

import "github.com/rs/xid"

// A Token is the opaque element that flows through the simulated queue. It
// stands for one customer.
type Token struct {
	ID      string
	Payload string
}

// NewToken creates a Token with a fresh ID.
func NewToken(payload string) Token {
	return Token{
		ID:      xid.New().String(),
		Payload: payload,
	}
}
