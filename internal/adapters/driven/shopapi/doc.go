// Package shopapi implements the shop gateway against the remote HTTP
// endpoint. It fetches the single merchandising document and decodes it
// into the domain wire shape.
//
// The gateway does not retry, cache or paginate. Failures map onto a
// small taxonomy so callers can tell "server unreachable" apart from
// "server reachable but payload broken".
package shopapi
