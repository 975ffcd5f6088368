package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gravitational/kingpin"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/models"
)

// indexesCommand groups `indexes list|create|modify|delete`.
type indexesCommand struct {
	list, create, modify, delete *kingpin.CmdClause

	count, offset                      int
	name                               string
	maxTotalDataSizeMB, frozenTimeSecs int
}

func newIndexesCommand() Command { return &indexesCommand{} }

func (c *indexesCommand) Initialize(app *kingpin.Application) {
	group := app.Command("indexes", "List or manage indexes")

	c.list = group.Command("list", "List indexes").Default()
	c.list.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.list.Flag("offset", "row offset for pagination").IntVar(&c.offset)

	c.create = group.Command("create", "Create a new index")
	c.create.Arg("name", "index name").Required().StringVar(&c.name)
	c.create.Flag("max-total-data-size-mb", "Maximum total size of the index in MB").IntVar(&c.maxTotalDataSizeMB)
	c.create.Flag("frozen-time-secs", "Age in seconds at which buckets freeze").IntVar(&c.frozenTimeSecs)

	c.modify = group.Command("modify", "Modify an existing index's settings")
	c.modify.Arg("name", "index name").Required().StringVar(&c.name)
	c.modify.Flag("max-total-data-size-mb", "Maximum total size of the index in MB").IntVar(&c.maxTotalDataSizeMB)
	c.modify.Flag("frozen-time-secs", "Age in seconds at which buckets freeze").IntVar(&c.frozenTimeSecs)

	c.delete = group.Command("delete", "Delete an index")
	c.delete.Arg("name", "index name").Required().StringVar(&c.name)
}

func (c *indexesCommand) params() map[string]string {
	params := map[string]string{}
	if c.maxTotalDataSizeMB > 0 {
		params["maxTotalDataSizeMB"] = fmt.Sprintf("%d", c.maxTotalDataSizeMB)
	}
	if c.frozenTimeSecs > 0 {
		params["frozenTimePeriodInSecs"] = fmt.Sprintf("%d", c.frozenTimeSecs)
	}
	return params
}

func (c *indexesCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.list.FullCommand():
		return true, c.runList(ctx, sess, stdout)
	case c.create.FullCommand():
		return true, c.runCreate(ctx, sess, stdout)
	case c.modify.FullCommand():
		return true, c.runModify(ctx, sess, stdout)
	case c.delete.FullCommand():
		return true, c.runDelete(ctx, sess, stdout)
	default:
		return false, nil
	}
}

func (c *indexesCommand) runList(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListIndexes(ctx)
	if err != nil {
		return err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.Index) format.ResourceDisplay { return format.IndexList(items) }, "index")
}

func (c *indexesCommand) runCreate(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	index, err := client.CreateIndex(ctx, c.name, c.params())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "created index %s\n", index.Name)
	return nil
}

func (c *indexesCommand) runModify(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	index, err := client.ModifyIndex(ctx, c.name, c.params())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "modified index %s\n", index.Name)
	return nil
}

func (c *indexesCommand) runDelete(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteIndex(ctx, c.name); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted index %s\n", c.name)
	return nil
}

// usersCommand groups `users list|create|delete`.
type usersCommand struct {
	list, create, delete *kingpin.CmdClause

	count, offset  int
	name, password string
	roleArg        string
}

func newUsersCommand() Command { return &usersCommand{} }

func (c *usersCommand) Initialize(app *kingpin.Application) {
	group := app.Command("users", "List or manage users")

	c.list = group.Command("list", "List users").Default()
	c.list.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.list.Flag("offset", "row offset for pagination").IntVar(&c.offset)

	c.create = group.Command("create", "Create a new user")
	c.create.Arg("name", "username").Required().StringVar(&c.name)
	c.create.Flag("password", "initial password").Required().StringVar(&c.password)
	c.create.Flag("roles", "comma-separated list of roles to assign").Required().StringVar(&c.roleArg)

	c.delete = group.Command("delete", "Delete a user")
	c.delete.Arg("name", "username").Required().StringVar(&c.name)
}

func (c *usersCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.list.FullCommand():
		return true, c.runList(ctx, sess, stdout)
	case c.create.FullCommand():
		return true, c.runCreate(ctx, sess, stdout)
	case c.delete.FullCommand():
		return true, c.runDelete(ctx, sess, stdout)
	default:
		return false, nil
	}
}

func (c *usersCommand) runList(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.User) format.ResourceDisplay { return format.UserList(items) }, "user")
}

func (c *usersCommand) runCreate(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	roles := strings.Split(c.roleArg, ",")
	user, err := client.CreateUser(ctx, c.name, c.password, roles)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "created user %s\n", user.Name)
	return nil
}

func (c *usersCommand) runDelete(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteUser(ctx, c.name); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted user %s\n", c.name)
	return nil
}

// appsCommand groups `apps list|install`.
type appsCommand struct {
	list, install *kingpin.CmdClause

	count, offset int
	path          string
	force         bool
}

func newAppsCommand() Command { return &appsCommand{} }

func (c *appsCommand) Initialize(app *kingpin.Application) {
	group := app.Command("apps", "List or manage installed apps")

	c.list = group.Command("list", "List installed apps").Default()
	c.list.Flag("count", "maximum rows to return (0 = all)").IntVar(&c.count)
	c.list.Flag("offset", "row offset for pagination").IntVar(&c.offset)

	c.install = group.Command("install", "Install an app from a server-local path")
	c.install.Arg("path", "path to the app package on the Splunk server").Required().StringVar(&c.path)
	c.install.Flag("force", "overwrite an existing installation").BoolVar(&c.force)
}

func (c *appsCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.list.FullCommand():
		return true, c.runList(ctx, sess, stdout)
	case c.install.FullCommand():
		return true, c.runInstall(ctx, sess, stdout)
	default:
		return false, nil
	}
}

func (c *appsCommand) runList(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	items, err := client.ListApps(ctx)
	if err != nil {
		return err
	}
	items = paginate(items, c.offset, c.count)

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()
	return RenderList(out, items, func(items []*models.App) format.ResourceDisplay { return format.AppList(items) }, "app")
}

func (c *appsCommand) runInstall(ctx context.Context, sess *Session, stdout io.Writer) error {
	client, _, err := sess.Client(ctx)
	if err != nil {
		return err
	}
	app, err := client.InstallApp(ctx, c.path, c.force)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "installed app %s\n", app.Name)
	return nil
}
