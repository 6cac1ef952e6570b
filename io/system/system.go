// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

// An IdleEvent is generated after each batch of window events has
// been delivered, including empty batches caused by a wakeup.
type IdleEvent struct{}

func (IdleEvent) ImplementsEvent() {}
