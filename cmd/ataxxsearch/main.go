// Command ataxxsearch is the process-level entry point: parse the
// serialized board, holes, and current player, run the build-selected
// strategy, and print the chosen move (or "pass" when none was published)
// to standard output. Publication goes through a ChannelSink; the
// shared-memory sink is not used here.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ataxxsearch/engine"
	"ataxxsearch/publish"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ataxxsearch <board> <holes> <player>",
		Short:        "Compute the best Ataxx move for the given position",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: false,
		RunE:         run,
	}
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	pos, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	holes, err := parseHoles(args[1])
	if err != nil {
		return err
	}
	player, err := parsePlayer(args[2])
	if err != nil {
		return err
	}

	sess := engine.NewSession(ActiveStrategy)
	sess.SetLogger(engine.NewLoggerFrom(zerolog.New(os.Stderr).With().Timestamp().Logger()))

	sink := publish.NewChannelSink()
	engine.ComputeBestMove(sess, &pos, holes, player, sink)

	mv, ok := sink.Last()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "pass")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), mv.String())
	return nil
}
