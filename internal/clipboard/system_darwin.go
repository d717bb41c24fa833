//go:build darwin

package clipboard

var platformCommands = [][]string{
	{"pbpaste"},
}
