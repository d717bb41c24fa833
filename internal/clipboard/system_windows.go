//go:build windows

package clipboard

var platformCommands = [][]string{
	{"powershell", "-NoProfile", "-Command", "Get-Clipboard"},
}
