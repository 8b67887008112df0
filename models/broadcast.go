package models

// QuickBroadcastID is the synthetic id carried by ad-hoc broadcasts.
const QuickBroadcastID = "quick"

// BroadcastTemplate is both a saved, named announcement and the shape of the
// active broadcast. Ad-hoc instances have an empty BtnName.
type BroadcastTemplate struct {
	ID       string `json:"id"`
	BtnName  string `json:"btnName"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// QuickAction is a toolbar shortcut that publishes an ad-hoc broadcast.
type QuickAction struct {
	Label    string `json:"label"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// TemplateRequest creates or edits a saved template.
type TemplateRequest struct {
	BtnName  string `json:"btnName" binding:"required,max=20"`
	Title    string `json:"title" binding:"required,max=100"`
	Subtitle string `json:"subtitle" binding:"max=200"`
}

// BroadcastRequest publishes an inline broadcast.
type BroadcastRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Subtitle string `json:"subtitle" binding:"max=200"`
}

// QuickActionRequest names a preset quick action by its label.
type QuickActionRequest struct {
	Label string `json:"label" binding:"required"`
}
