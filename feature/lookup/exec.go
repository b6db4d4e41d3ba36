package lookup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"bom-checker/feature/distributor"

	"go.uber.org/zap"
)

// PartNumberPlaceholder is replaced by the part number in ExecProvider arguments.
const PartNumberPlaceholder = "{pn}"

// ExecProvider runs a helper command that prints the record as JSON on stdout.
type ExecProvider struct {
	// Args is the command line. Without a placeholder the part number is appended.
	Args []string
	// Timeout bounds each run when positive.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Lookup runs the command for one part number.
func (p *ExecProvider) Lookup(ctx context.Context, partNumber string) (*distributor.Record, error) {
	if len(p.Args) == 0 {
		return nil, fmt.Errorf("lookup command is empty")
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	args := p.commandArgs(partNumber)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			p.logger().Warn("Part lookup returned no record",
				zap.String("part_number", partNumber),
				zap.Int("exit_code", exitErr.ExitCode()),
				zap.String("stderr", strings.TrimSpace(stderr.String())),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run lookup command for %s: %w", partNumber, err)
	}

	if len(bytes.TrimSpace(stdout.Bytes())) == 0 {
		return nil, nil
	}

	return distributor.Decode(&stdout, partNumber)
}

func (p *ExecProvider) commandArgs(partNumber string) []string {
	args := make([]string, 0, len(p.Args)+1)
	replaced := false
	for _, a := range p.Args {
		if strings.Contains(a, PartNumberPlaceholder) {
			a = strings.ReplaceAll(a, PartNumberPlaceholder, partNumber)
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, partNumber)
	}
	return args
}

func (p *ExecProvider) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
