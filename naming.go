package cartesian

import (
	"fmt"
	"os/exec"
	"strings"
)

// Filename returns a string to use for an output file, tagged with the short
// git hash of the working tree when there is one.
func Filename(prefix, name, ext string) string {
	if hash := getGitHash(); hash != "" {
		return fmt.Sprintf("%s%s-%s%s", prefix, hash, name, ext)
	}
	return fmt.Sprintf("%s%s%s", prefix, name, ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
