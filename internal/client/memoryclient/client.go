// Package memoryclient is a typed HTTP client for the memory store API.
package memoryclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
)

const requestIDHeader = "X-Request-Id"

// Client talks to a memory store over HTTP.
type Client struct {
	httpClient *resty.Client
}

// Option configures the underlying resty client.
type Option func(*resty.Client)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetry retries transport failures and 5xx responses.
func WithRetry(count int, wait time.Duration) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				return err != nil || resp.StatusCode() >= http.StatusInternalServerError
			})
	}
}

// WithHeader sets a header on every request.
func WithHeader(name, value string) Option {
	return func(c *resty.Client) { c.SetHeader(name, value) }
}

// NewClient constructs the client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(httpClient)
	}
	return &Client{httpClient: httpClient}
}

type dataResponse[T any] struct {
	Data T `json:"data"`
}

// ListOptions pages and orders conversation listings. Zero values take the server defaults.
type ListOptions struct {
	Limit          int
	Offset         int
	OrderBy        string
	OrderDirection string
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	setInt(v, "limit", o.Limit)
	setInt(v, "offset", o.Offset)
	setString(v, "order_by", o.OrderBy)
	setString(v, "order_direction", o.OrderDirection)
	return v
}

// Ready reports whether the service and its database are reachable.
func (c *Client) Ready(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", nil, nil)
}

// CreateConversation creates a conversation. An existing id yields ErrAlreadyExists.
func (c *Client) CreateConversation(ctx context.Context, params conversation.CreateParams) (*conversation.Conversation, error) {
	var out conversation.Conversation
	err := c.do(ctx, http.MethodPost, "/v1/conversations", func(r *resty.Request) {
		r.SetBody(params)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConversation returns the conversation, or nil when it does not exist.
func (c *Client) GetConversation(ctx context.Context, id string) (*conversation.Conversation, error) {
	var out dataResponse[*conversation.Conversation]
	err := c.do(ctx, http.MethodGet, "/v1/conversations/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	}, &out)
	return out.Data, err
}

// ListConversationsByResource returns the conversations of a resource in creation order.
func (c *Client) ListConversationsByResource(ctx context.Context, resourceID string) ([]*conversation.Conversation, error) {
	var out dataResponse[[]*conversation.Conversation]
	err := c.do(ctx, http.MethodGet, "/v1/resources/{resource_id}/conversations", func(r *resty.Request) {
		r.SetPathParam("resource_id", resourceID)
	}, &out)
	return out.Data, err
}

// ListConversationsByUser returns one page of the user's conversations.
func (c *Client) ListConversationsByUser(ctx context.Context, userID string, opts ListOptions) ([]*conversation.Conversation, error) {
	var out dataResponse[[]*conversation.Conversation]
	err := c.do(ctx, http.MethodGet, "/v1/users/{user_id}/conversations", func(r *resty.Request) {
		r.SetPathParam("user_id", userID).SetQueryParamsFromValues(opts.values())
	}, &out)
	return out.Data, err
}

// QueryConversations lists conversations filtered by user and/or resource.
func (c *Client) QueryConversations(ctx context.Context, userID, resourceID string, opts ListOptions) ([]*conversation.Conversation, error) {
	q := opts.values()
	setString(q, "user_id", userID)
	setString(q, "resource_id", resourceID)

	var out dataResponse[[]*conversation.Conversation]
	err := c.do(ctx, http.MethodGet, "/v1/conversations", func(r *resty.Request) {
		r.SetQueryParamsFromValues(q)
	}, &out)
	return out.Data, err
}

// UpdateConversation applies a sparse patch.
func (c *Client) UpdateConversation(ctx context.Context, id string, params conversation.UpdateParams) (*conversation.Conversation, error) {
	var out conversation.Conversation
	err := c.do(ctx, http.MethodPatch, "/v1/conversations/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(params)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation removes the conversation with its messages and steps.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/conversations/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	}, nil)
}

// AddMessage upserts a message. An empty id is replaced by a fresh UUID.
func (c *Client) AddMessage(ctx context.Context, params message.AddParams) (message.AddResult, error) {
	if params.ID == "" {
		params.ID = uuid.NewString()
	}
	var out message.AddResult
	err := c.do(ctx, http.MethodPost, "/v1/messages", func(r *resty.Request) {
		r.SetBody(params)
	}, &out)
	return out, err
}

// AddMessages upserts messages in order. Nothing is written when any message is invalid.
func (c *Client) AddMessages(ctx context.Context, batch []message.AddParams) ([]message.AddResult, error) {
	body := make([]message.AddParams, len(batch))
	for i, params := range batch {
		if params.ID == "" {
			params.ID = uuid.NewString()
		}
		body[i] = params
	}

	var out dataResponse[[]message.AddResult]
	err := c.do(ctx, http.MethodPost, "/v1/messages/batch", func(r *resty.Request) {
		r.SetBody(map[string]any{"messages": body})
	}, &out)
	return out.Data, err
}

// GetMessages returns the most recent messages, oldest first.
func (c *Client) GetMessages(ctx context.Context, params message.GetParams) ([]*message.Message, error) {
	q := url.Values{}
	setString(q, "user_id", params.UserID)
	setInt(q, "limit", params.Limit)
	setTime(q, "before", params.Before)
	setTime(q, "after", params.After)
	for _, role := range params.Roles {
		q.Add("roles", role)
	}

	var out dataResponse[[]*message.Message]
	err := c.do(ctx, http.MethodGet, "/v1/conversations/{id}/messages", func(r *resty.Request) {
		r.SetPathParam("id", params.ConversationID).SetQueryParamsFromValues(q)
	}, &out)
	return out.Data, err
}

// ClearMessages deletes a user's messages and steps. An empty conversationID clears every
// conversation the user owns.
func (c *Client) ClearMessages(ctx context.Context, userID, conversationID string) (message.ClearResult, error) {
	var out message.ClearResult
	err := c.do(ctx, http.MethodDelete, "/v1/users/{user_id}/messages", func(r *resty.Request) {
		r.SetPathParam("user_id", userID)
		if conversationID != "" {
			r.SetQueryParam("conversation_id", conversationID)
		}
	}, &out)
	return out, err
}

// SaveSteps upserts steps by id.
func (c *Client) SaveSteps(ctx context.Context, steps []step.Step) (step.SaveResult, error) {
	var out step.SaveResult
	err := c.do(ctx, http.MethodPost, "/v1/steps", func(r *resty.Request) {
		r.SetBody(map[string]any{"steps": steps})
	}, &out)
	return out, err
}

// GetSteps returns steps by ascending step index.
func (c *Client) GetSteps(ctx context.Context, params step.GetParams) ([]*step.Step, error) {
	q := url.Values{}
	setString(q, "user_id", params.UserID)
	setInt(q, "limit", params.Limit)
	setString(q, "operation_id", params.OperationID)

	var out dataResponse[[]*step.Step]
	err := c.do(ctx, http.MethodGet, "/v1/conversations/{id}/steps", func(r *resty.Request) {
		r.SetPathParam("id", params.ConversationID).SetQueryParamsFromValues(q)
	}, &out)
	return out.Data, err
}

func scopeValues(params workingmemory.Params) url.Values {
	q := url.Values{}
	setString(q, "scope", string(params.Scope))
	setString(q, "conversation_id", params.ConversationID)
	setString(q, "user_id", params.UserID)
	return q
}

// GetWorkingMemory returns the stored text, or nil.
func (c *Client) GetWorkingMemory(ctx context.Context, params workingmemory.Params) (*string, error) {
	var out dataResponse[*string]
	err := c.do(ctx, http.MethodGet, "/v1/working-memory", func(r *resty.Request) {
		r.SetQueryParamsFromValues(scopeValues(params))
	}, &out)
	return out.Data, err
}

// SetWorkingMemory stores text under the scope.
func (c *Client) SetWorkingMemory(ctx context.Context, params workingmemory.SetParams) (workingmemory.Result, error) {
	var out workingmemory.Result
	err := c.do(ctx, http.MethodPut, "/v1/working-memory", func(r *resty.Request) {
		r.SetBody(params)
	}, &out)
	return out, err
}

// RemoveWorkingMemory drops the stored text.
func (c *Client) RemoveWorkingMemory(ctx context.Context, params workingmemory.Params) (workingmemory.Result, error) {
	var out workingmemory.Result
	err := c.do(ctx, http.MethodDelete, "/v1/working-memory", func(r *resty.Request) {
		r.SetQueryParamsFromValues(scopeValues(params))
	}, &out)
	return out, err
}

// GetWorkflowState returns the run, or nil when it does not exist.
func (c *Client) GetWorkflowState(ctx context.Context, executionID string) (*workflow.State, error) {
	var out dataResponse[*workflow.State]
	err := c.do(ctx, http.MethodGet, "/v1/workflow-states/{execution_id}", func(r *resty.Request) {
		r.SetPathParam("execution_id", executionID)
	}, &out)
	return out.Data, err
}

// SetWorkflowState creates the run or replaces it, keeping createdAt.
func (c *Client) SetWorkflowState(ctx context.Context, executionID string, state workflow.State) (workflow.Result, error) {
	var out workflow.Result
	err := c.do(ctx, http.MethodPut, "/v1/workflow-states/{execution_id}", func(r *resty.Request) {
		r.SetPathParam("execution_id", executionID).SetBody(state)
	}, &out)
	return out, err
}

// UpdateWorkflowState patches the supplied fields.
func (c *Client) UpdateWorkflowState(ctx context.Context, executionID string, patch workflow.Patch) (workflow.Result, error) {
	var out workflow.Result
	err := c.do(ctx, http.MethodPatch, "/v1/workflow-states/{execution_id}", func(r *resty.Request) {
		r.SetPathParam("execution_id", executionID).SetBody(patch)
	}, &out)
	return out, err
}

// QueryWorkflowRuns lists runs newest first.
func (c *Client) QueryWorkflowRuns(ctx context.Context, params workflow.QueryRunsParams) ([]*workflow.State, error) {
	q := url.Values{}
	setString(q, "workflow_id", params.WorkflowID)
	setString(q, "status", string(params.Status))
	setTime(q, "from", params.From)
	setTime(q, "to", params.To)
	if params.Limit != nil {
		q.Set("limit", strconv.Itoa(*params.Limit))
	}
	setInt(q, "offset", params.Offset)

	var out dataResponse[[]*workflow.State]
	err := c.do(ctx, http.MethodGet, "/v1/workflow-states", func(r *resty.Request) {
		r.SetQueryParamsFromValues(q)
	}, &out)
	return out.Data, err
}

// GetSuspendedWorkflows returns the suspended runs of a workflow, newest first.
func (c *Client) GetSuspendedWorkflows(ctx context.Context, workflowID string) ([]*workflow.State, error) {
	var out dataResponse[[]*workflow.State]
	err := c.do(ctx, http.MethodGet, "/v1/workflows/{workflow_id}/suspended", func(r *resty.Request) {
		r.SetPathParam("workflow_id", workflowID)
	}, &out)
	return out.Data, err
}

func (c *Client) do(ctx context.Context, method, path string, configure func(*resty.Request), out any) error {
	var apiErr errorResponse
	req := c.httpClient.R().
		SetContext(ctx).
		SetError(&apiErr)
	if out != nil {
		req.SetResult(out)
	}
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("memory store %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		requestID := apiErr.Error.RequestID
		if requestID == "" {
			requestID = resp.Header().Get(requestIDHeader)
		}
		return &APIError{
			StatusCode: resp.StatusCode(),
			Type:       apiErr.Error.Type,
			Message:    apiErr.Error.Message,
			Code:       apiErr.Error.Code,
			RequestID:  requestID,
		}
	}
	return nil
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value != 0 {
		v.Set(key, strconv.Itoa(value))
	}
}

func setTime(v url.Values, key string, value *time.Time) {
	if value != nil {
		v.Set(key, value.UTC().Format(time.RFC3339Nano))
	}
}
