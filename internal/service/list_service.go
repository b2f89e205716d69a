package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shoppinglist/internal/lists"
	"github.com/mmynk/shoppinglist/internal/middleware"
	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/store"
	pb "github.com/mmynk/shoppinglist/pkg/api/shoppingv1"
	"github.com/mmynk/shoppinglist/pkg/api/shoppingv1/shoppingv1connect"
)

// ListService implements the Connect ShoppingListService.
type ListService struct {
	shoppingv1connect.UnimplementedShoppingListServiceHandler
	store  *store.Store
	engine *lists.Engine
}

// NewListService creates a ListService over an opened store.
func NewListService(s *store.Store, engine *lists.Engine) *ListService {
	return &ListService{store: s, engine: engine}
}

// ListLists returns the lists visible to the caller.
func (s *ListService) ListLists(ctx context.Context, req *connect.Request[pb.ListListsRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	visible := lists.VisibleLists(s.store.Snapshot(), user, req.Msg.IncludeArchived)
	slog.Debug("ListLists successful", "user", user, "count", len(visible))
	return listsResponse(visible, user), nil
}

// ListArchived returns the archived lists visible to the caller.
func (s *ListService) ListArchived(ctx context.Context, req *connect.Request[pb.ListArchivedRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	return listsResponse(lists.Archived(s.store.Snapshot(), user), user), nil
}

// GetList returns one list. Lists the caller cannot see are reported as
// not found.
func (s *ListService) GetList(ctx context.Context, req *connect.Request[pb.GetListRequest]) (*connect.Response[pb.GetListResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("GetList request received", "list_id", req.Msg.ListId, "user", user)

	l, err := lists.Find(s.store.Snapshot(), req.Msg.ListId)
	if err == nil && !lists.CanView(l, user) {
		err = &lists.Error{Op: "GetList", ListID: req.Msg.ListId, Err: lists.ErrNotFound}
	}
	if err != nil {
		return nil, toConnectError(err)
	}

	l.Items = lists.PendingItems(l, req.Msg.ShowDone)
	return connect.NewResponse(&pb.GetListResponse{List: toProtoList(l, user)}), nil
}

// CreateList creates a list owned by the caller.
func (s *ListService) CreateList(ctx context.Context, req *connect.Request[pb.CreateListRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("CreateList request received", "name", req.Msg.Name, "user", user)
	return s.apply(ctx, "CreateList", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.CreateList(c, user, req.Msg.Name)
	})
}

// DeleteList deletes a list owned by the caller.
func (s *ListService) DeleteList(ctx context.Context, req *connect.Request[pb.DeleteListRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("DeleteList request received", "list_id", req.Msg.ListId, "user", user)
	return s.apply(ctx, "DeleteList", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.DeleteList(c, user, req.Msg.ListId)
	})
}

// RenameList renames a list owned by the caller.
func (s *ListService) RenameList(ctx context.Context, req *connect.Request[pb.RenameListRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("RenameList request received", "list_id", req.Msg.ListId, "name", req.Msg.Name, "user", user)
	return s.apply(ctx, "RenameList", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.RenameList(c, user, req.Msg.ListId, req.Msg.Name)
	})
}

// ToggleArchive archives or restores a list owned by the caller.
func (s *ListService) ToggleArchive(ctx context.Context, req *connect.Request[pb.ToggleArchiveRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("ToggleArchive request received", "list_id", req.Msg.ListId, "user", user)
	return s.apply(ctx, "ToggleArchive", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.ToggleArchive(c, user, req.Msg.ListId)
	})
}

// AddItem adds an item to a list.
func (s *ListService) AddItem(ctx context.Context, req *connect.Request[pb.AddItemRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("AddItem request received", "list_id", req.Msg.ListId, "name", req.Msg.Name, "user", user)
	return s.apply(ctx, "AddItem", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.AddItem(c, user, req.Msg.ListId, req.Msg.Name)
	})
}

// ToggleItem checks or unchecks an item.
func (s *ListService) ToggleItem(ctx context.Context, req *connect.Request[pb.ToggleItemRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("ToggleItem request received", "list_id", req.Msg.ListId, "item_id", req.Msg.ItemId, "user", user)
	return s.apply(ctx, "ToggleItem", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.ToggleItem(c, user, req.Msg.ListId, req.Msg.ItemId)
	})
}

// RemoveItem removes an item from a list.
func (s *ListService) RemoveItem(ctx context.Context, req *connect.Request[pb.RemoveItemRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("RemoveItem request received", "list_id", req.Msg.ListId, "item_id", req.Msg.ItemId, "user", user)
	return s.apply(ctx, "RemoveItem", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.RemoveItem(c, user, req.Msg.ListId, req.Msg.ItemId)
	})
}

// AddMember invites a member to a list owned by the caller.
func (s *ListService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("AddMember request received", "list_id", req.Msg.ListId, "name", req.Msg.Name, "user", user)
	return s.apply(ctx, "AddMember", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.AddMember(c, user, req.Msg.ListId, req.Msg.Name)
	})
}

// RemoveMember removes a member from a list owned by the caller.
func (s *ListService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("RemoveMember request received", "list_id", req.Msg.ListId, "member_id", req.Msg.MemberId, "user", user)
	return s.apply(ctx, "RemoveMember", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.RemoveMember(c, user, req.Msg.ListId, req.Msg.MemberId)
	})
}

// LeaveList removes the caller from a list they do not own.
func (s *ListService) LeaveList(ctx context.Context, req *connect.Request[pb.LeaveListRequest]) (*connect.Response[pb.ListsResponse], error) {
	user := middleware.GetUser(ctx)
	slog.Info("LeaveList request received", "list_id", req.Msg.ListId, "user", user)
	return s.apply(ctx, "LeaveList", user, func(c models.Collection) (models.Collection, error) {
		return s.engine.LeaveList(c, user, req.Msg.ListId)
	})
}

// apply runs a command through the store and returns the caller's overview.
func (s *ListService) apply(ctx context.Context, op, user string, fn store.MutateFunc) (*connect.Response[pb.ListsResponse], error) {
	c, err := s.store.Apply(ctx, op, fn)
	if err != nil {
		if errors.Is(err, store.ErrPersistence) {
			slog.Error(op+" failed", "user", user, "error", err)
		}
		return nil, toConnectError(err)
	}
	slog.Info(op+" successful", "user", user, "lists", len(c))
	return listsResponse(lists.Overview(c, user), user), nil
}

// toConnectError maps list and store errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, lists.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, lists.ErrUnauthorized):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, lists.ErrArchived):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, lists.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, store.ErrPersistence):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func listsResponse(c models.Collection, user string) *connect.Response[pb.ListsResponse] {
	out := make([]*pb.List, len(c))
	for i, l := range c {
		out[i] = toProtoList(l, user)
	}
	return connect.NewResponse(&pb.ListsResponse{Lists: out})
}

func toProtoList(l models.ShoppingList, user string) *pb.List {
	members := make([]*pb.Member, len(l.Members))
	for i, m := range l.Members {
		members[i] = &pb.Member{Id: m.ID, Name: m.Name}
	}
	items := make([]*pb.Item, len(l.Items))
	for i, it := range l.Items {
		items[i] = &pb.Item{Id: it.ID, Name: it.Name, Done: it.Done}
	}
	return &pb.List{
		Id:            l.ID,
		Name:          l.Name,
		Owner:         l.Owner,
		Members:       members,
		Items:         items,
		Archived:      l.Archived,
		ViewerIsOwner: lists.IsOwner(l, user),
	}
}
