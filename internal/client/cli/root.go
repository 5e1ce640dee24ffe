package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// Root is the entry point of the interactive storefront. It greets the
// user and hands the terminal over to the REPL until EOF or an explicit
// exit command.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Hidden Haul CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
