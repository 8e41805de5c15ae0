package util

import (
	"io"
	"os/exec"
	"strings"
	"sync"
)

// RunCmdWithPipes runs a command and copies its stdout and stderr to the given writers.
// It waits for the command and both copies to complete and returns the first error
// of the command or of the copies.
func RunCmdWithPipes(cmd *exec.Cmd, stdout, stderr io.Writer) error {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	errChan := make(chan error, 2) // Buffered channel for 2 goroutines
	var wg sync.WaitGroup

	for _, p := range []struct {
		dst io.Writer
		src io.Reader
	}{
		{dst: stdout, src: outPipe},
		{dst: stderr, src: errPipe},
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := io.Copy(p.dst, p.src); err != nil {
				errChan <- err
			}
		}()
	}

	// Pipes must be drained before Wait closes them.
	wg.Wait()
	close(errChan)

	if err := cmd.Wait(); err != nil {
		return err
	}

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseExecutable splits an executable string such as "java -jar fabrikt.jar"
// into the command name and its leading arguments.
func ParseExecutable(executable string) (string, []string) {
	split := strings.Fields(executable)
	if len(split) == 0 {
		return "", nil
	}

	return split[0], split[1:]
}
