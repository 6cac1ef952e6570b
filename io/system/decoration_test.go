// SPDX-License-Identifier: Unlicense OR MIT

package system

import (
	"testing"
)

func TestActionString(t *testing.T) {
	for _, tc := range []struct {
		actions Action
		res     string
	}{
		{ActionMinimize, "ActionMinimize"},
		{ActionMaximize, "ActionMaximize"},
		{ActionUnmaximize, "ActionUnmaximize"},
		{ActionFullscreen, "ActionFullscreen"},
		{ActionRaise, "ActionRaise"},
		{ActionCenter, "ActionCenter"},
		{ActionMinimize | ActionRaise, "ActionMinimize|ActionRaise"},
		{ActionMaximize | ActionCenter | ActionFullscreen, "ActionMaximize|ActionFullscreen|ActionCenter"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.actions.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}
