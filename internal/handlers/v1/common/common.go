// Package common holds the response envelopes and error mapping shared by the v1 handlers.
package common

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/service"
)

// ID is the body item of delete responses.
type ID struct {
	ID string `json:"id" doc:"Identifier of the affected record"`
}

// IDResponse is the {data: {id}} envelope.
type IDResponse struct {
	Data ID `json:"data"`
}

// IDListResponse is the {data: {id}[]} envelope.
type IDListResponse struct {
	Data []ID `json:"data"`
}

// IDOutput is the Huma output of single deletes.
type IDOutput struct {
	Body IDResponse
}

// IDListOutput is the Huma output of bulk deletes.
type IDListOutput struct {
	Body IDListResponse
}

// PathIDInput is the Huma input of routes addressed by /{id}.
type PathIDInput struct {
	ID string `path:"id" doc:"Record id"`
}

// BulkDeleteBody is the request body of bulk deletes.
type BulkDeleteBody struct {
	IDs []string `json:"ids" doc:"Ids to delete; ids the caller does not own are skipped"`
}

// BulkDeleteInput is the Huma input of bulk deletes.
type BulkDeleteInput struct {
	Body BulkDeleteBody
}

func NewIDListOutput(ids []string) *IDListOutput {
	out := &IDListOutput{Body: IDListResponse{Data: make([]ID, len(ids))}}
	for i, id := range ids {
		out.Body.Data[i] = ID{ID: id}
	}
	return out
}

func NewIDOutput(id string) *IDOutput {
	return &IDOutput{Body: IDResponse{Data: ID{ID: id}}}
}

// Error maps service errors onto HTTP problems. Anything unrecognised is a 500
// described by failure.
func Error(err error, resource, failure string) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, service.ErrMissingID):
		return huma.Error400BadRequest("Missing id")
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(resource + " not found")
	case errors.Is(err, service.ErrInvalidDate):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, failure, err)
	}
}
