package domain

import "strings"

// ParseCommandArgs drops the first word of a chat message.
func ParseCommandArgs(args string) string {
	command := strings.Split(args, " ")
	return strings.Join(command[1:], " ")
}

// ParseCommand returns the first word of a chat message, lower-cased and
// without a "@botname" suffix.
func ParseCommand(args string) string {
	command := strings.Split(args, " ")
	cmd, _, _ := strings.Cut(command[0], "@")
	return strings.ToLower(cmd)
}
