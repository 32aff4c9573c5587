// Package donation contains the donation aggregate and its supporting value
// objects: the lifecycle Status state machine, the Reservation an
// organization attaches when claiming a donation, and the VerificationCode
// both parties present to confirm the handoff.
//
// The aggregate models the persisted state and its invariants. The state
// transitions themselves (reserve, accept or reject the pickup, each
// party's confirmation) are applied by the donation store as atomic
// conditional updates so that concurrent requests racing on the same
// donation resolve to exactly one winner.
package donation
