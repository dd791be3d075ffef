package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/plan"
)

// CommandHandler launches the downstream tool once per experiment.
type CommandHandler struct {
	cmd    *plan.Command
	stdout io.Writer
	stderr io.Writer
}

func NewCommandHandler(cmd *plan.Command, stdout, stderr io.Writer) *CommandHandler {
	return &CommandHandler{cmd: cmd, stdout: stdout, stderr: stderr}
}

func (h *CommandHandler) Handle(ctx context.Context, exp experiment.Experiment) error {
	argv, err := h.cmd.Render(exp)
	if err != nil {
		return fmt.Errorf("render command: %w", err)
	}

	slog.Info("launching experiment", "run_id", exp.RunID, "argv", argv)

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdout = h.stdout
	c.Stderr = h.stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
