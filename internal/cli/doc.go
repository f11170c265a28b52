// SPDX-License-Identifier: EPL-2.0

// Package cli holds the terminal styling shared by the audmix commands.
package cli
