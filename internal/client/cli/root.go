package cli

import (
	"bufio"
	"context"
	"os"
)

// Root prints the welcome banner and runs the REPL on stdin until the
// user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("U-fresher CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
