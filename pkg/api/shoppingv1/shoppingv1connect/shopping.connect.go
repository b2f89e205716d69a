// Package shoppingv1connect wires the shoppinglist.v1 API to Connect.
package shoppingv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	shoppingv1 "github.com/mmynk/shoppinglist/pkg/api/shoppingv1"
)

// ShoppingListServiceName is the fully-qualified name of the ShoppingListService service.
const ShoppingListServiceName = "shoppinglist.v1.ShoppingListService"

// Procedure paths, relative to the server root.
const (
	ShoppingListServiceListListsProcedure     = "/shoppinglist.v1.ShoppingListService/ListLists"
	ShoppingListServiceListArchivedProcedure  = "/shoppinglist.v1.ShoppingListService/ListArchived"
	ShoppingListServiceGetListProcedure       = "/shoppinglist.v1.ShoppingListService/GetList"
	ShoppingListServiceCreateListProcedure    = "/shoppinglist.v1.ShoppingListService/CreateList"
	ShoppingListServiceDeleteListProcedure    = "/shoppinglist.v1.ShoppingListService/DeleteList"
	ShoppingListServiceRenameListProcedure    = "/shoppinglist.v1.ShoppingListService/RenameList"
	ShoppingListServiceToggleArchiveProcedure = "/shoppinglist.v1.ShoppingListService/ToggleArchive"
	ShoppingListServiceAddItemProcedure       = "/shoppinglist.v1.ShoppingListService/AddItem"
	ShoppingListServiceToggleItemProcedure    = "/shoppinglist.v1.ShoppingListService/ToggleItem"
	ShoppingListServiceRemoveItemProcedure    = "/shoppinglist.v1.ShoppingListService/RemoveItem"
	ShoppingListServiceAddMemberProcedure     = "/shoppinglist.v1.ShoppingListService/AddMember"
	ShoppingListServiceRemoveMemberProcedure  = "/shoppinglist.v1.ShoppingListService/RemoveMember"
	ShoppingListServiceLeaveListProcedure     = "/shoppinglist.v1.ShoppingListService/LeaveList"
)

type (
	ListsResponse = connect.Response[shoppingv1.ListsResponse]
)

// ShoppingListServiceClient is a client for the shoppinglist.v1.ShoppingListService service.
type ShoppingListServiceClient interface {
	ListLists(context.Context, *connect.Request[shoppingv1.ListListsRequest]) (*ListsResponse, error)
	ListArchived(context.Context, *connect.Request[shoppingv1.ListArchivedRequest]) (*ListsResponse, error)
	GetList(context.Context, *connect.Request[shoppingv1.GetListRequest]) (*connect.Response[shoppingv1.GetListResponse], error)
	CreateList(context.Context, *connect.Request[shoppingv1.CreateListRequest]) (*ListsResponse, error)
	DeleteList(context.Context, *connect.Request[shoppingv1.DeleteListRequest]) (*ListsResponse, error)
	RenameList(context.Context, *connect.Request[shoppingv1.RenameListRequest]) (*ListsResponse, error)
	ToggleArchive(context.Context, *connect.Request[shoppingv1.ToggleArchiveRequest]) (*ListsResponse, error)
	AddItem(context.Context, *connect.Request[shoppingv1.AddItemRequest]) (*ListsResponse, error)
	ToggleItem(context.Context, *connect.Request[shoppingv1.ToggleItemRequest]) (*ListsResponse, error)
	RemoveItem(context.Context, *connect.Request[shoppingv1.RemoveItemRequest]) (*ListsResponse, error)
	AddMember(context.Context, *connect.Request[shoppingv1.AddMemberRequest]) (*ListsResponse, error)
	RemoveMember(context.Context, *connect.Request[shoppingv1.RemoveMemberRequest]) (*ListsResponse, error)
	LeaveList(context.Context, *connect.Request[shoppingv1.LeaveListRequest]) (*ListsResponse, error)
}

// NewShoppingListServiceClient constructs a client for the
// shoppinglist.v1.ShoppingListService service. baseURL is the server root,
// e.g. http://localhost:8080.
func NewShoppingListServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShoppingListServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(shoppingv1.Codec{})}, opts...)
	return &shoppingListServiceClient{
		listLists:     connect.NewClient[shoppingv1.ListListsRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceListListsProcedure, opts...),
		listArchived:  connect.NewClient[shoppingv1.ListArchivedRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceListArchivedProcedure, opts...),
		getList:       connect.NewClient[shoppingv1.GetListRequest, shoppingv1.GetListResponse](httpClient, baseURL+ShoppingListServiceGetListProcedure, opts...),
		createList:    connect.NewClient[shoppingv1.CreateListRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceCreateListProcedure, opts...),
		deleteList:    connect.NewClient[shoppingv1.DeleteListRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceDeleteListProcedure, opts...),
		renameList:    connect.NewClient[shoppingv1.RenameListRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceRenameListProcedure, opts...),
		toggleArchive: connect.NewClient[shoppingv1.ToggleArchiveRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceToggleArchiveProcedure, opts...),
		addItem:       connect.NewClient[shoppingv1.AddItemRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceAddItemProcedure, opts...),
		toggleItem:    connect.NewClient[shoppingv1.ToggleItemRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceToggleItemProcedure, opts...),
		removeItem:    connect.NewClient[shoppingv1.RemoveItemRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceRemoveItemProcedure, opts...),
		addMember:     connect.NewClient[shoppingv1.AddMemberRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceAddMemberProcedure, opts...),
		removeMember:  connect.NewClient[shoppingv1.RemoveMemberRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceRemoveMemberProcedure, opts...),
		leaveList:     connect.NewClient[shoppingv1.LeaveListRequest, shoppingv1.ListsResponse](httpClient, baseURL+ShoppingListServiceLeaveListProcedure, opts...),
	}
}

// shoppingListServiceClient implements ShoppingListServiceClient.
type shoppingListServiceClient struct {
	listLists     *connect.Client[shoppingv1.ListListsRequest, shoppingv1.ListsResponse]
	listArchived  *connect.Client[shoppingv1.ListArchivedRequest, shoppingv1.ListsResponse]
	getList       *connect.Client[shoppingv1.GetListRequest, shoppingv1.GetListResponse]
	createList    *connect.Client[shoppingv1.CreateListRequest, shoppingv1.ListsResponse]
	deleteList    *connect.Client[shoppingv1.DeleteListRequest, shoppingv1.ListsResponse]
	renameList    *connect.Client[shoppingv1.RenameListRequest, shoppingv1.ListsResponse]
	toggleArchive *connect.Client[shoppingv1.ToggleArchiveRequest, shoppingv1.ListsResponse]
	addItem       *connect.Client[shoppingv1.AddItemRequest, shoppingv1.ListsResponse]
	toggleItem    *connect.Client[shoppingv1.ToggleItemRequest, shoppingv1.ListsResponse]
	removeItem    *connect.Client[shoppingv1.RemoveItemRequest, shoppingv1.ListsResponse]
	addMember     *connect.Client[shoppingv1.AddMemberRequest, shoppingv1.ListsResponse]
	removeMember  *connect.Client[shoppingv1.RemoveMemberRequest, shoppingv1.ListsResponse]
	leaveList     *connect.Client[shoppingv1.LeaveListRequest, shoppingv1.ListsResponse]
}

func (c *shoppingListServiceClient) ListLists(ctx context.Context, req *connect.Request[shoppingv1.ListListsRequest]) (*ListsResponse, error) {
	return c.listLists.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) ListArchived(ctx context.Context, req *connect.Request[shoppingv1.ListArchivedRequest]) (*ListsResponse, error) {
	return c.listArchived.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) GetList(ctx context.Context, req *connect.Request[shoppingv1.GetListRequest]) (*connect.Response[shoppingv1.GetListResponse], error) {
	return c.getList.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) CreateList(ctx context.Context, req *connect.Request[shoppingv1.CreateListRequest]) (*ListsResponse, error) {
	return c.createList.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) DeleteList(ctx context.Context, req *connect.Request[shoppingv1.DeleteListRequest]) (*ListsResponse, error) {
	return c.deleteList.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) RenameList(ctx context.Context, req *connect.Request[shoppingv1.RenameListRequest]) (*ListsResponse, error) {
	return c.renameList.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) ToggleArchive(ctx context.Context, req *connect.Request[shoppingv1.ToggleArchiveRequest]) (*ListsResponse, error) {
	return c.toggleArchive.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) AddItem(ctx context.Context, req *connect.Request[shoppingv1.AddItemRequest]) (*ListsResponse, error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) ToggleItem(ctx context.Context, req *connect.Request[shoppingv1.ToggleItemRequest]) (*ListsResponse, error) {
	return c.toggleItem.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) RemoveItem(ctx context.Context, req *connect.Request[shoppingv1.RemoveItemRequest]) (*ListsResponse, error) {
	return c.removeItem.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) AddMember(ctx context.Context, req *connect.Request[shoppingv1.AddMemberRequest]) (*ListsResponse, error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) RemoveMember(ctx context.Context, req *connect.Request[shoppingv1.RemoveMemberRequest]) (*ListsResponse, error) {
	return c.removeMember.CallUnary(ctx, req)
}

func (c *shoppingListServiceClient) LeaveList(ctx context.Context, req *connect.Request[shoppingv1.LeaveListRequest]) (*ListsResponse, error) {
	return c.leaveList.CallUnary(ctx, req)
}

// ShoppingListServiceHandler is an implementation of the shoppinglist.v1.ShoppingListService service.
type ShoppingListServiceHandler interface {
	ListLists(context.Context, *connect.Request[shoppingv1.ListListsRequest]) (*ListsResponse, error)
	ListArchived(context.Context, *connect.Request[shoppingv1.ListArchivedRequest]) (*ListsResponse, error)
	GetList(context.Context, *connect.Request[shoppingv1.GetListRequest]) (*connect.Response[shoppingv1.GetListResponse], error)
	CreateList(context.Context, *connect.Request[shoppingv1.CreateListRequest]) (*ListsResponse, error)
	DeleteList(context.Context, *connect.Request[shoppingv1.DeleteListRequest]) (*ListsResponse, error)
	RenameList(context.Context, *connect.Request[shoppingv1.RenameListRequest]) (*ListsResponse, error)
	ToggleArchive(context.Context, *connect.Request[shoppingv1.ToggleArchiveRequest]) (*ListsResponse, error)
	AddItem(context.Context, *connect.Request[shoppingv1.AddItemRequest]) (*ListsResponse, error)
	ToggleItem(context.Context, *connect.Request[shoppingv1.ToggleItemRequest]) (*ListsResponse, error)
	RemoveItem(context.Context, *connect.Request[shoppingv1.RemoveItemRequest]) (*ListsResponse, error)
	AddMember(context.Context, *connect.Request[shoppingv1.AddMemberRequest]) (*ListsResponse, error)
	RemoveMember(context.Context, *connect.Request[shoppingv1.RemoveMemberRequest]) (*ListsResponse, error)
	LeaveList(context.Context, *connect.Request[shoppingv1.LeaveListRequest]) (*ListsResponse, error)
}

// NewShoppingListServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and
// the handler itself.
func NewShoppingListServiceHandler(svc ShoppingListServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(shoppingv1.Codec{})}, opts...)
	handlers := map[string]http.Handler{
		ShoppingListServiceListListsProcedure:     connect.NewUnaryHandler(ShoppingListServiceListListsProcedure, svc.ListLists, opts...),
		ShoppingListServiceListArchivedProcedure:  connect.NewUnaryHandler(ShoppingListServiceListArchivedProcedure, svc.ListArchived, opts...),
		ShoppingListServiceGetListProcedure:       connect.NewUnaryHandler(ShoppingListServiceGetListProcedure, svc.GetList, opts...),
		ShoppingListServiceCreateListProcedure:    connect.NewUnaryHandler(ShoppingListServiceCreateListProcedure, svc.CreateList, opts...),
		ShoppingListServiceDeleteListProcedure:    connect.NewUnaryHandler(ShoppingListServiceDeleteListProcedure, svc.DeleteList, opts...),
		ShoppingListServiceRenameListProcedure:    connect.NewUnaryHandler(ShoppingListServiceRenameListProcedure, svc.RenameList, opts...),
		ShoppingListServiceToggleArchiveProcedure: connect.NewUnaryHandler(ShoppingListServiceToggleArchiveProcedure, svc.ToggleArchive, opts...),
		ShoppingListServiceAddItemProcedure:       connect.NewUnaryHandler(ShoppingListServiceAddItemProcedure, svc.AddItem, opts...),
		ShoppingListServiceToggleItemProcedure:    connect.NewUnaryHandler(ShoppingListServiceToggleItemProcedure, svc.ToggleItem, opts...),
		ShoppingListServiceRemoveItemProcedure:    connect.NewUnaryHandler(ShoppingListServiceRemoveItemProcedure, svc.RemoveItem, opts...),
		ShoppingListServiceAddMemberProcedure:     connect.NewUnaryHandler(ShoppingListServiceAddMemberProcedure, svc.AddMember, opts...),
		ShoppingListServiceRemoveMemberProcedure:  connect.NewUnaryHandler(ShoppingListServiceRemoveMemberProcedure, svc.RemoveMember, opts...),
		ShoppingListServiceLeaveListProcedure:     connect.NewUnaryHandler(ShoppingListServiceLeaveListProcedure, svc.LeaveList, opts...),
	}
	return "/" + ShoppingListServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedShoppingListServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedShoppingListServiceHandler struct{}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(procedure+" is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) ListLists(context.Context, *connect.Request[shoppingv1.ListListsRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceListListsProcedure)
}

func (UnimplementedShoppingListServiceHandler) ListArchived(context.Context, *connect.Request[shoppingv1.ListArchivedRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceListArchivedProcedure)
}

func (UnimplementedShoppingListServiceHandler) GetList(context.Context, *connect.Request[shoppingv1.GetListRequest]) (*connect.Response[shoppingv1.GetListResponse], error) {
	return nil, unimplemented(ShoppingListServiceGetListProcedure)
}

func (UnimplementedShoppingListServiceHandler) CreateList(context.Context, *connect.Request[shoppingv1.CreateListRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceCreateListProcedure)
}

func (UnimplementedShoppingListServiceHandler) DeleteList(context.Context, *connect.Request[shoppingv1.DeleteListRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceDeleteListProcedure)
}

func (UnimplementedShoppingListServiceHandler) RenameList(context.Context, *connect.Request[shoppingv1.RenameListRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceRenameListProcedure)
}

func (UnimplementedShoppingListServiceHandler) ToggleArchive(context.Context, *connect.Request[shoppingv1.ToggleArchiveRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceToggleArchiveProcedure)
}

func (UnimplementedShoppingListServiceHandler) AddItem(context.Context, *connect.Request[shoppingv1.AddItemRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceAddItemProcedure)
}

func (UnimplementedShoppingListServiceHandler) ToggleItem(context.Context, *connect.Request[shoppingv1.ToggleItemRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceToggleItemProcedure)
}

func (UnimplementedShoppingListServiceHandler) RemoveItem(context.Context, *connect.Request[shoppingv1.RemoveItemRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceRemoveItemProcedure)
}

func (UnimplementedShoppingListServiceHandler) AddMember(context.Context, *connect.Request[shoppingv1.AddMemberRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceAddMemberProcedure)
}

func (UnimplementedShoppingListServiceHandler) RemoveMember(context.Context, *connect.Request[shoppingv1.RemoveMemberRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceRemoveMemberProcedure)
}

func (UnimplementedShoppingListServiceHandler) LeaveList(context.Context, *connect.Request[shoppingv1.LeaveListRequest]) (*ListsResponse, error) {
	return nil, unimplemented(ShoppingListServiceLeaveListProcedure)
}
