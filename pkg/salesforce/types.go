package salesforce

// QueryResponse is the result of a SOQL query.
type QueryResponse struct {
	TotalSize int              `json:"totalSize"`
	Done      bool             `json:"done"`
	Records   []map[string]any `json:"records"`
}

// Attributes identifies the sObject type of a record in a collection request.
type Attributes struct {
	Type string `json:"type"`
}

// CollectionRequest is the payload for composite sObject collection writes.
type CollectionRequest struct {
	AllOrNone bool             `json:"allOrNone"`
	Records   []map[string]any `json:"records"`
}

// SaveError describes a per-record failure in a collection write.
type SaveError struct {
	StatusCode string   `json:"statusCode"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields"`
}

// SaveResult is the per-record outcome of a collection write.
type SaveResult struct {
	ID      string      `json:"id"`
	Success bool        `json:"success"`
	Errors  []SaveError `json:"errors"`
}

// ApprovalRequestItem is a single submission to the approval process API.
type ApprovalRequestItem struct {
	ActionType        string   `json:"actionType"`
	ContextID         string   `json:"contextId"`
	Comments          string   `json:"comments,omitempty"`
	NextApproverIDs   []string `json:"nextApproverIds,omitempty"`
	ProcessDefinition string   `json:"processDefinitionNameOrId,omitempty"`
}

// ApprovalRequest wraps one or more approval submissions.
type ApprovalRequest struct {
	Requests []ApprovalRequestItem `json:"requests"`
}

// ApprovalResult is the per-item outcome of an approval submission.
type ApprovalResult struct {
	Success        bool     `json:"success"`
	InstanceID     string   `json:"instanceId"`
	InstanceStatus string   `json:"instanceStatus"`
	ActorIDs       []string `json:"actorIds"`
	Errors         []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// feedElementRequest is the Chatter feed-elements payload.
type feedElementRequest struct {
	FeedElementType string   `json:"feedElementType"`
	SubjectID       string   `json:"subjectId"`
	Body            feedBody `json:"body"`
}

type feedBody struct {
	MessageSegments []feedSegment `json:"messageSegments"`
}

type feedSegment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
