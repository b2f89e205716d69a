// Package shoppingv1 defines the messages of the shoppinglist.v1 RPC API.
//
// Messages are plain structs encoded as JSON on the wire (see Codec).
package shoppingv1

// List is a shopping list as seen by the caller.
type List struct {
	Id       string    `json:"id"`
	Name     string    `json:"name"`
	Owner    string    `json:"owner"`
	Members  []*Member `json:"members"`
	Items    []*Item   `json:"items"`
	Archived bool      `json:"archived"`

	// ViewerIsOwner is true when the caller owns the list.
	ViewerIsOwner bool `json:"viewer_is_owner"`
}

// Member is a person a list is shared with. Id is what RemoveMember takes.
type Member struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Item is one entry on a list.
type Item struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// ListsResponse carries the caller's visible lists. Every mutating RPC
// returns the active lists visible to the caller after the command.
type ListsResponse struct {
	Lists []*List `json:"lists"`
}

// ListListsRequest asks for the caller's visible lists.
type ListListsRequest struct {
	IncludeArchived bool `json:"include_archived,omitempty"`
}

// ListArchivedRequest asks for the caller's archived lists.
type ListArchivedRequest struct{}

// GetListRequest asks for one visible list.
type GetListRequest struct {
	ListId string `json:"list_id"`
	// ShowDone includes checked items; by default only pending items are returned.
	ShowDone bool `json:"show_done,omitempty"`
}

// GetListResponse carries the requested list.
type GetListResponse struct {
	List *List `json:"list"`
}

// CreateListRequest creates a list owned by the caller.
type CreateListRequest struct {
	Name string `json:"name"`
}

// DeleteListRequest deletes a list owned by the caller.
type DeleteListRequest struct {
	ListId string `json:"list_id"`
}

// RenameListRequest renames an active list owned by the caller.
type RenameListRequest struct {
	ListId string `json:"list_id"`
	Name   string `json:"name"`
}

// ToggleArchiveRequest archives an active list or restores an archived one.
type ToggleArchiveRequest struct {
	ListId string `json:"list_id"`
}

// AddItemRequest appends an unchecked item.
type AddItemRequest struct {
	ListId string `json:"list_id"`
	Name   string `json:"name"`
}

// ToggleItemRequest checks or unchecks an item.
type ToggleItemRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
}

// RemoveItemRequest removes an item.
type RemoveItemRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
}

// AddMemberRequest shares a list with a person by name.
type AddMemberRequest struct {
	ListId string `json:"list_id"`
	Name   string `json:"name"`
}

// RemoveMemberRequest removes a member by id. The owner cannot be removed.
type RemoveMemberRequest struct {
	ListId   string `json:"list_id"`
	MemberId string `json:"member_id"`
}

// LeaveListRequest removes the caller from a list they do not own.
type LeaveListRequest struct {
	ListId string `json:"list_id"`
}
