package request

// SelectAllRequest replaces a session's selection with the ids currently
// visible in the caller's filtered list. Hidden rows must never ride along.
type SelectAllRequest struct {
	VisibleIDs []string `json:"visible_ids" binding:"required"`
}

// ToggleRequest flips one id in or out of the selection.
type ToggleRequest struct {
	ID string `json:"id" binding:"required"`
}
