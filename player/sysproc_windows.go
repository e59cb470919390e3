//go:build windows

package player

import "syscall"

const createNewProcessGroup = 0x00000200

// sysProcAttr detaches the player from the console's Ctrl+C handling.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNewProcessGroup}
}
