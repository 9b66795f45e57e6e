//go:build windows

package launch

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysProcAttr detaches the launched editor from our console and process group.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
