package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gravitational/kingpin"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/models"
)

// jobsCommand groups `jobs list`, `jobs cancel <sid>`, and `jobs delete
// <sid>`, mirroring tool/tctl/common/token_command.go's add/rm/ls grouping
// under one parent CmdClause.
type jobsCommand struct {
	list, cancel, delete *kingpin.CmdClause

	count, offset int
	sid           string
}

func newJobsCommand() Command { return &jobsCommand{} }

func (c *jobsCommand) Initialize(app *kingpin.Application) {
	group := app.Command("jobs", "List or manage search jobs")

	c.list = group.Command("list", "List search jobs").Default()
	c.list.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.list.Flag("offset", "row offset for pagination").IntVar(&c.offset)

	c.cancel = group.Command("cancel", "Cancel a running search job")
	c.cancel.Arg("sid", "search job ID").Required().StringVar(&c.sid)

	c.delete = group.Command("delete", "Delete a completed search job")
	c.delete.Arg("sid", "search job ID").Required().StringVar(&c.sid)
}

func (c *jobsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.list.FullCommand():
		return true, c.runList(ctx, sess, stdout)
	case c.cancel.FullCommand():
		return true, c.runCancel(ctx, sess, stdout)
	case c.delete.FullCommand():
		return true, c.runDelete(ctx, sess, stdout)
	default:
		return false, nil
	}
}

func (c *jobsCommand) runList(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListSearchJobs(ctx)
	if err != nil {
		return err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.SearchJobStatus) format.ResourceDisplay { return format.SearchJobList(items) }, "search_job")
}

func (c *jobsCommand) runCancel(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.CancelSearchJob(ctx, c.sid); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "cancelled job %s\n", c.sid)
	return nil
}

func (c *jobsCommand) runDelete(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteSearchJob(ctx, c.sid); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted job %s\n", c.sid)
	return nil
}
