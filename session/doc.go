// SPDX-License-Identifier: EPL-2.0

// Package session keeps the state of an interactive two-track mix: what is
// loaded in slots A and B, their volume and pan, and the last result.
//
// Controls are validated when set, so a Session never holds a value Mix
// would reject. Play always mixes first and hands the player a complete
// buffer.
package session
