// Package http implements the inbound HTTP surface of the salama control
// plane.
//
// The API follows the action-dispatch convention of the web client it
// serves: each domain gets one POST endpoint whose JSON body carries an
// "action" discriminator (e.g. /api/cases with action "create" | "load" |
// "update" | "delete" | "export"). Responses carry "success" or "error"
// envelopes, with discriminator fields such as "requiresPin" and
// "requires_consent" that let the client prompt instead of failing.
//
// All endpoints are anonymous: possession of a case ID (and PIN where set)
// is the only credential. Middleware attaches a per-request trace ID and
// structured request logging; bodies are never logged because they carry
// conversation content.
package http
