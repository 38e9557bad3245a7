package provision

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// Cmd describes one external command invocation.
type Cmd struct {
	Path string
	Args []string
	Env  map[string]string // additional env vars
	Dir  string            // working directory
}

// Runner executes c and blocks until the process exits. The default runner
// streams the child's output through log line by line, so build diagnostics
// land in the same place as our own.
type Runner func(ctx context.Context, log zerolog.Logger, c Cmd) error

func runCmd(ctx context.Context, log zerolog.Logger, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		streamLines(stdout, func(line string) { log.Info().Msg(line) })
	}()
	go func() {
		defer wg.Done()
		streamLines(stderr, func(line string) { log.Info().Str("stream", "stderr").Msg(line) })
	}()
	// drain both pipes before Wait closes them
	wg.Wait()
	return cmd.Wait()
}

func streamLines(r io.Reader, emit func(string)) {
	s := bufio.NewScanner(r)
	// cargo can emit very long single lines (rustc invocations)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		emit(s.Text())
	}
}

// exitStatus extracts the exit status from an error returned by a Runner.
// It reports -1 when the process never ran to completion (start failure,
// signal, context cancellation).
func exitStatus(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
