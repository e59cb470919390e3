//go:build !windows

package player

import "syscall"

// sysProcAttr puts the player in its own process group.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
