package cmdopts

import (
	"context"
	"fmt"

	"github.com/sheetsync/sheetsync/internal/metrics"
)

type SourceCommand struct {
	owner *Options
	Index SourceIndexCommand `command:"index" description:"Download the index table, list its metrics and then exit"`
}

func NewSourceCommand(owner *Options) *SourceCommand {
	return &SourceCommand{
		owner: owner,
		Index: SourceIndexCommand{owner: owner},
	}
}

type SourceIndexCommand struct {
	owner *Options
}

// Execute prints one line per index row: slug, gid and whether the row
// would be synchronized. Rows without a gid are reported as skipped.
func (cmd *SourceIndexCommand) Execute([]string) error {
	ctx := context.Background()
	if err := cmd.owner.InitFetcher(ctx); err != nil {
		return err
	}
	index, err := cmd.owner.Fetcher.Fetch(ctx, cmd.owner.Sources.IndexGID)
	if err != nil {
		// err here specifies execution error, not configuration error
		// so we indicate it with a special exit code
		fmt.Fprintf(cmd.owner.OutputWriter, "FAIL:\t%s\n", err)
		cmd.owner.CompleteCommand(ExitCodeFetchError)
		return nil
	}
	for _, row := range index.Rows {
		d := metrics.NewDescriptor(index.Header, row)
		if d.Included() {
			fmt.Fprintf(cmd.owner.OutputWriter, "SYNC:\t%s\t%s\n", d.Slug, d.GID)
		} else {
			fmt.Fprintf(cmd.owner.OutputWriter, "SKIP:\t%s\n", d.Slug)
		}
	}
	cmd.owner.CompleteCommand(ExitCodeOK)
	return nil
}
