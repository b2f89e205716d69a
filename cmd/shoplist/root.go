package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/shoppinglist/internal/middleware"
	pb "github.com/mmynk/shoppinglist/pkg/api/shoppingv1"
	"github.com/mmynk/shoppinglist/pkg/api/shoppingv1/shoppingv1connect"
)

// cli holds the flags shared by every subcommand.
type cli struct {
	server  string
	user    string
	timeout time.Duration

	out    io.Writer
	client shoppingv1connect.ShoppingListServiceClient
}

func defaultServer() string {
	if v := os.Getenv("SHOPLIST_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "Manage shared shopping lists",
		Long: `shoplist talks to a shopping list server over Connect RPC.

Every command acts as the user given by --user. Commands that change a
list print the caller's overview afterwards.

Examples:
  shoplist ls
  shoplist --user John add-item 1 Butter
  shoplist show 1 --all`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.out = cmd.OutOrStdout()
			c.client = shoppingv1connect.NewShoppingListServiceClient(
				&http.Client{Timeout: c.timeout},
				c.server,
				connect.WithInterceptors(middleware.ClientIdentity(c.user)),
			)
		},
	}

	root.PersistentFlags().StringVarP(&c.server, "server", "s", defaultServer(), "server base URL (env SHOPLIST_SERVER)")
	root.PersistentFlags().StringVarP(&c.user, "user", "u", os.Getenv("SHOPLIST_USER"), "act as this user; empty uses the server default (env SHOPLIST_USER)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		c.lsCmd(),
		c.showCmd(),
		c.createCmd(),
		c.mutationCmd("rm <list-id>", "Delete a list you own", 1, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.DeleteList(ctx, connect.NewRequest(&pb.DeleteListRequest{ListId: a[0]}))
		}),
		c.mutationCmd("rename <list-id> <name>", "Rename a list you own", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.RenameList(ctx, connect.NewRequest(&pb.RenameListRequest{ListId: a[0], Name: a[1]}))
		}),
		c.mutationCmd("archive <list-id>", "Archive a list you own, or restore it if archived", 1, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.ToggleArchive(ctx, connect.NewRequest(&pb.ToggleArchiveRequest{ListId: a[0]}))
		}),
		c.mutationCmd("add-item <list-id> <name>", "Add an item to a list", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.AddItem(ctx, connect.NewRequest(&pb.AddItemRequest{ListId: a[0], Name: a[1]}))
		}),
		c.mutationCmd("toggle <list-id> <item-id>", "Mark an item done or not done", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.ToggleItem(ctx, connect.NewRequest(&pb.ToggleItemRequest{ListId: a[0], ItemId: a[1]}))
		}),
		c.mutationCmd("rm-item <list-id> <item-id>", "Remove an item from a list", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.RemoveItem(ctx, connect.NewRequest(&pb.RemoveItemRequest{ListId: a[0], ItemId: a[1]}))
		}),
		c.mutationCmd("add-member <list-id> <name>", "Share a list you own with someone", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.AddMember(ctx, connect.NewRequest(&pb.AddMemberRequest{ListId: a[0], Name: a[1]}))
		}),
		c.mutationCmd("rm-member <list-id> <member-id>", "Remove a member from a list you own", 2, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.RemoveMember(ctx, connect.NewRequest(&pb.RemoveMemberRequest{ListId: a[0], MemberId: a[1]}))
		}),
		c.mutationCmd("leave <list-id>", "Leave a list shared with you", 1, func(ctx context.Context, a []string) (*shoppingv1connect.ListsResponse, error) {
			return c.client.LeaveList(ctx, connect.NewRequest(&pb.LeaveListRequest{ListId: a[0]}))
		}),
	)
	return root
}

func (c *cli) lsCmd() *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the shopping lists you can see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				resp *shoppingv1connect.ListsResponse
				err  error
			)
			if archived {
				resp, err = c.client.ListArchived(cmd.Context(), connect.NewRequest(&pb.ListArchivedRequest{}))
			} else {
				resp, err = c.client.ListLists(cmd.Context(), connect.NewRequest(&pb.ListListsRequest{}))
			}
			if err != nil {
				return describe(err)
			}
			printOverview(c.out, resp.Msg.Lists)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&archived, "archived", "a", false, "show archived lists instead")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a list with its members and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetList(cmd.Context(), connect.NewRequest(&pb.GetListRequest{
				ListId:   args[0],
				ShowDone: all,
			}))
			if err != nil {
				return describe(err)
			}
			printList(c.out, resp.Msg.List)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include items already done")
	return cmd
}

func (c *cli) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list owned by you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.CreateList(cmd.Context(), connect.NewRequest(&pb.CreateListRequest{Name: args[0]}))
			if err != nil {
				return describe(err)
			}
			printOverview(c.out, resp.Msg.Lists)
			return nil
		},
	}
}

// mutationCmd builds a command that calls one mutating RPC and prints the
// resulting overview.
func (c *cli) mutationCmd(use, short string, nargs int, call func(context.Context, []string) (*shoppingv1connect.ListsResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := call(cmd.Context(), args)
			if err != nil {
				return describe(err)
			}
			printOverview(c.out, resp.Msg.Lists)
			return nil
		},
	}
}

// describe turns Connect codes into messages a person can act on.
func describe(err error) error {
	switch connect.CodeOf(err) {
	case connect.CodeNotFound:
		return fmt.Errorf("not found: %s", message(err))
	case connect.CodePermissionDenied:
		return fmt.Errorf("not allowed: %s", message(err))
	case connect.CodeFailedPrecondition:
		return fmt.Errorf("list is archived: %s", message(err))
	case connect.CodeInvalidArgument:
		return fmt.Errorf("invalid input: %s", message(err))
	case connect.CodeUnavailable:
		return fmt.Errorf("server could not save the change, try again: %w", err)
	default:
		return err
	}
}

func message(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
