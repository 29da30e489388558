// Package process runs short-lived external tools so that a timeout or
// cancellation also stops any children they spawned.
package process

import (
	"context"
	"os/exec"
)

// Command returns an exec.Cmd for name that runs in its own process group.
// When ctx is done the whole group is killed, not only the direct child.
func Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- callers pass resolved tool paths
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}
	return cmd
}
