package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

func SubmissionToResponse(item *entity.Submission) *types.SubmissionResponse {
	if item == nil {
		return nil
	}

	resp := &types.SubmissionResponse{
		Id:            item.ID,
		ApplicationId: item.ApplicationID,
		StepTitle:     item.StepTitle,
		Status:        string(item.Status),
		ReviewerNote:  derefString(item.ReviewerNote),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if item.ReviewedAt != nil {
		resp.ReviewedAt = item.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func SubmissionsToResponse(items []*entity.Submission) []*types.SubmissionResponse {
	result := make([]*types.SubmissionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, SubmissionToResponse(item))
	}
	return result
}
